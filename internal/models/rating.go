package models

// RawFactors holds one team's unnormalized performance figures, derived once
// per run from a TeamStanding and optional TeamStats. Values are only
// meaningful relative to the rest of the league after normalization.
type RawFactors struct {
	GoalDiffPerGame float64
	PointPct        float64
	RecentForm      float64
	HomePct         float64
	RoadPct         float64
	SpecialTeams    float64
	ShotDiffPerGame float64
	StreakMomentum  float64
	GamesPlayed     int
}

// TeamRating is the normalized factor set plus the composite strength score.
// A rating is league-relative: it is only valid against the standings
// snapshot it was built from.
type TeamRating struct {
	GoalDiffPerGame float64 `json:"goal_diff_per_game"`
	PointPct        float64 `json:"point_pct"`
	RecentForm      float64 `json:"recent_form"`
	SpecialTeams    float64 `json:"special_teams"`
	ShotDiffPerGame float64 `json:"shot_diff_per_game"`
	StreakMomentum  float64 `json:"streak_momentum"`

	// HomePct and RoadPct are normalized like the other factors but kept out
	// of the composite; the predictor applies them per side at matchup time.
	HomePct float64 `json:"home_pct"`
	RoadPct float64 `json:"road_pct"`

	Composite   float64 `json:"composite"`
	GamesPlayed int     `json:"games_played"`
}

// RestSituation classifies a team's fatigue state relative to a target date.
type RestSituation struct {
	BackToBack  bool `json:"back_to_back"`
	ThreeInFour bool `json:"three_in_four"`
	RestDays    int  `json:"rest_days"`
}

// FactorWeights are the fixed weights of the composite model. The seven
// weights sum to 1.0, but HomeRoadSplit is reserved for venue-aware use at
// matchup time, so the venue-agnostic composite sums to 0.90 of a team's
// normalized factors.
type FactorWeights struct {
	GoalDiffPerGame float64
	PointPct        float64
	RecentForm      float64
	HomeRoadSplit   float64
	SpecialTeams    float64
	ShotDiffPerGame float64
	StreakMomentum  float64
}

// StarThreshold maps a minimum absolute differential to a star grade.
type StarThreshold struct {
	Threshold float64
	Stars     int
}

// ModelParams is the immutable parameter object passed into the prediction
// engine. StarThresholds must be ordered by descending threshold; the grade
// scan takes the first entry the differential meets or exceeds.
type ModelParams struct {
	Weights FactorWeights

	HomeIceBonus       float64
	BackToBackPenalty  float64
	ThreeInFourPenalty float64
	ExtendedRestBonus  float64

	StarThresholds []StarThreshold
	SkipThreshold  float64
	EarlySeasonGP  int
}

// DefaultModelParams returns the production parameter set.
func DefaultModelParams() ModelParams {
	return ModelParams{
		Weights: FactorWeights{
			GoalDiffPerGame: 0.25,
			PointPct:        0.20,
			RecentForm:      0.20,
			HomeRoadSplit:   0.10,
			SpecialTeams:    0.10,
			ShotDiffPerGame: 0.10,
			StreakMomentum:  0.05,
		},
		HomeIceBonus:       0.035,
		BackToBackPenalty:  -0.030,
		ThreeInFourPenalty: -0.045,
		ExtendedRestBonus:  0.010,
		StarThresholds: []StarThreshold{
			{Threshold: 0.25, Stars: 5},
			{Threshold: 0.17, Stars: 4},
			{Threshold: 0.10, Stars: 3},
			{Threshold: 0.05, Stars: 2},
			{Threshold: 0.00, Stars: 1},
		},
		SkipThreshold: 0.005,
		EarlySeasonGP: 10,
	}
}
