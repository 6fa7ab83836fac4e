package models

import "time"

// TeamStanding is one team's season-to-date record, flattened from the NHL
// standings API at the client boundary. Zero values stand in for fields the
// API omitted; the engine treats them as neutral input, never as an error.
type TeamStanding struct {
	Abbrev     string `json:"abbrev"`
	Name       string `json:"name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`

	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	OtLosses    int     `json:"ot_losses"`
	Points      int     `json:"points"`
	PointPct    float64 `json:"point_pct"`

	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`

	HomeWins     int `json:"home_wins"`
	HomeLosses   int `json:"home_losses"`
	HomeOtLosses int `json:"home_ot_losses"`
	RoadWins     int `json:"road_wins"`
	RoadLosses   int `json:"road_losses"`
	RoadOtLosses int `json:"road_ot_losses"`

	L10Wins     int `json:"l10_wins"`
	L10Losses   int `json:"l10_losses"`
	L10OtLosses int `json:"l10_ot_losses"`

	// StreakCode is "W", "L", or "OT"; empty when the API gave none.
	StreakCode  string `json:"streak_code"`
	StreakCount int    `json:"streak_count"`
}

// TeamStats holds the supplemental per-team figures from the stats summary
// API. A team may have no entry at all; callers pass nil and the engine falls
// back to neutral defaults.
type TeamStats struct {
	PowerPlayPct        float64 `json:"power_play_pct"`
	PenaltyKillPct      float64 `json:"penalty_kill_pct"`
	ShotsForPerGame     float64 `json:"shots_for_per_game"`
	ShotsAgainstPerGame float64 `json:"shots_against_per_game"`
}

// ScheduledGame is one game on a day's slate.
type ScheduledGame struct {
	HomeAbbrev   string    `json:"home_abbrev"`
	AwayAbbrev   string    `json:"away_abbrev"`
	StartTimeUTC time.Time `json:"start_time_utc"`
	GameState    string    `json:"game_state"`
	GameType     int       `json:"game_type"`
}

// GameResult is one finished game's final score.
type GameResult struct {
	HomeAbbrev string `json:"home_abbrev"`
	AwayAbbrev string `json:"away_abbrev"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
}

// Winner returns the abbreviation of the winning side.
func (r GameResult) Winner() string {
	if r.HomeScore > r.AwayScore {
		return r.HomeAbbrev
	}
	return r.AwayAbbrev
}

// Matchup returns the "AWY @ HOM" label used as the game key throughout the
// cache, tracker, and published picks.
func (r GameResult) Matchup() string {
	return r.AwayAbbrev + " @ " + r.HomeAbbrev
}
