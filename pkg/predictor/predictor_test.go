package predictor

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// fakeScheduleSource serves canned game dates and counts fetches per team
type fakeScheduleSource struct {
	dates map[string][]time.Time
	errs  map[string]error
	calls map[string]int
}

func (f *fakeScheduleSource) TeamGameDates(_ context.Context, abbrev string) ([]time.Time, error) {
	f.calls[abbrev]++
	if err, ok := f.errs[abbrev]; ok {
		return nil, err
	}
	return f.dates[abbrev], nil
}

// testEngineSetup is a helper struct to hold test dependencies
type testEngineSetup struct {
	engine    *Engine
	schedules *fakeScheduleSource
}

// setupTestEngine creates a test engine with a fake schedule source
func setupTestEngine(params models.ModelParams) *testEngineSetup {
	schedules := &fakeScheduleSource{
		dates: make(map[string][]time.Time),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
	return &testEngineSetup{
		engine:    NewEngine(params, schedules, zerolog.Nop()),
		schedules: schedules,
	}
}

// evenStanding returns a standing that is identical for every team, so that
// every normalized factor collapses to the 0.5 midpoint
func evenStanding(abbrev string) models.TeamStanding {
	return models.TeamStanding{
		Abbrev:      abbrev,
		GamesPlayed: 20,
		PointPct:    0.550,
		GoalsFor:    60, GoalsAgainst: 60,
		HomeWins: 5, HomeLosses: 4, HomeOtLosses: 1,
		RoadWins: 5, RoadLosses: 4, RoadOtLosses: 1,
		L10Wins: 5, L10Losses: 4, L10OtLosses: 1,
		StreakCode: "W", StreakCount: 2,
	}
}

// lopsidedLeague returns a two-team league where BOS leads CHI on every
// factor, so BOS normalizes to 1.0 and CHI to 0.0 across the board
func lopsidedLeague(weakGP int) ([]models.TeamStanding, map[string]models.TeamStats) {
	standings := []models.TeamStanding{
		{
			Abbrev: "BOS", GamesPlayed: 20, PointPct: 0.800, GoalsFor: 80, GoalsAgainst: 40,
			HomeWins: 9, HomeLosses: 1, HomeOtLosses: 0, RoadWins: 7, RoadLosses: 2, RoadOtLosses: 1,
			L10Wins: 9, L10Losses: 1, L10OtLosses: 0, StreakCode: "W", StreakCount: 5,
		},
		{
			Abbrev: "CHI", GamesPlayed: weakGP, PointPct: 0.200, GoalsFor: 5, GoalsAgainst: 15,
			HomeWins: 0, HomeLosses: 2, HomeOtLosses: 0, RoadWins: 0, RoadLosses: 1, RoadOtLosses: 0,
			L10Wins: 0, L10Losses: 3, L10OtLosses: 0, StreakCode: "L", StreakCount: 3,
		},
	}
	teamStats := map[string]models.TeamStats{
		"BOS": {PowerPlayPct: 0.28, PenaltyKillPct: 0.85, ShotsForPerGame: 34.0, ShotsAgainstPerGame: 26.0},
		"CHI": {PowerPlayPct: 0.10, PenaltyKillPct: 0.70, ShotsForPerGame: 25.0, ShotsAgainstPerGame: 35.0},
	}
	return standings, teamStats
}

// TestPredictGame_MissingRating tests the explicit missing-data signal
func TestPredictGame_MissingRating(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	ratings := setup.engine.BuildRatings([]models.TeamStanding{evenStanding("BOS")}, nil)

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "TOR", ratings, NewScheduleCache(), day("2026-01-10"))

	assert.Nil(t, pred)
	assert.ErrorIs(t, err, ErrMissingRating)
}

// TestPredictGame_EvenMatchup tests that two identical teams with no rest
// adjustments differ by exactly the home-ice bonus and grade at the lowest
// non-zero tier
func TestPredictGame_EvenMatchup(t *testing.T) {
	params := models.DefaultModelParams()
	setup := setupTestEngine(params)
	standings := []models.TeamStanding{evenStanding("BOS"), evenStanding("TOR")}
	ratings := setup.engine.BuildRatings(standings, nil)

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "TOR", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.Equal(t, "TOR @ BOS", pred.Game)
	assert.Equal(t, "BOS", pred.Pick)
	assert.Equal(t, 1, pred.Stars)
	assert.InDelta(t, params.HomeIceBonus, pred.Diff, 1e-9)
	assert.Equal(t, "home ice", pred.KeyFactors)
	assert.Equal(t, "2026-01-10", pred.GameDate)
	assert.NotEqual(t, "", pred.ID.String())
}

// TestPredictGame_SkipBelowThreshold tests the no-confident-pick sentinel
func TestPredictGame_SkipBelowThreshold(t *testing.T) {
	params := models.DefaultModelParams()
	params.HomeIceBonus = 0.0 // even matchup now lands at diff 0
	setup := setupTestEngine(params)
	standings := []models.TeamStanding{evenStanding("BOS"), evenStanding("TOR")}
	ratings := setup.engine.BuildRatings(standings, nil)

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "TOR", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.Equal(t, models.PickSkip, pred.Pick)
	assert.True(t, pred.Skipped())
	assert.Equal(t, 0, pred.Stars)
}

// TestStarsFor_ThresholdTable tests grade boundaries and monotonicity
func TestStarsFor_ThresholdTable(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())

	tests := []struct {
		diff     float64
		expected int
	}{
		{0.00, 1},
		{0.049, 1},
		{0.05, 2},
		{0.10, 3},
		{0.169, 3},
		{0.17, 4},
		{0.25, 5},
		{0.90, 5},
	}

	prev := 0
	for _, tt := range tests {
		stars := setup.engine.starsFor(tt.diff)
		assert.Equal(t, tt.expected, stars, "diff %v", tt.diff)
		assert.GreaterOrEqual(t, stars, prev, "grade must be non-decreasing in |diff|")
		prev = stars
	}
}

// TestPredictGame_EarlySeasonCap tests that a thin sample caps an otherwise
// five-star pick at two stars
func TestPredictGame_EarlySeasonCap(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings, teamStats := lopsidedLeague(3)
	ratings := setup.engine.BuildRatings(standings, teamStats)

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "CHI", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.Equal(t, "BOS", pred.Pick)
	// Uncapped, the lopsided differential clears the five-star threshold.
	assert.Greater(t, pred.Diff, 0.25)
	assert.Equal(t, 2, pred.Stars)
	assert.Contains(t, pred.KeyFactors, "early-season cap")
}

// TestPredictGame_NoCapWithSeasonedTeams tests that the same differential
// grades five stars once both samples are large enough
func TestPredictGame_NoCapWithSeasonedTeams(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings, teamStats := lopsidedLeague(15)
	ratings := setup.engine.BuildRatings(standings, teamStats)

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "CHI", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.Equal(t, 5, pred.Stars)
	assert.NotContains(t, pred.KeyFactors, "early-season cap")
}

// TestPredictGame_HomeBackToBack tests the home-side penalty direction
func TestPredictGame_HomeBackToBack(t *testing.T) {
	params := models.DefaultModelParams()
	setup := setupTestEngine(params)
	standings := []models.TeamStanding{evenStanding("BOS"), evenStanding("TOR")}
	ratings := setup.engine.BuildRatings(standings, nil)
	setup.schedules.dates["BOS"] = []time.Time{day("2026-01-09")}

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "TOR", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.InDelta(t, params.HomeIceBonus+params.BackToBackPenalty, pred.Diff, 1e-9)
	assert.Contains(t, pred.KeyFactors, "BOS B2B")
}

// TestPredictGame_AwayBackToBackFlipsSign tests that the home-relative
// penalty benefits the home side when the away team is fatigued
func TestPredictGame_AwayBackToBackFlipsSign(t *testing.T) {
	params := models.DefaultModelParams()
	setup := setupTestEngine(params)
	standings := []models.TeamStanding{evenStanding("BOS"), evenStanding("TOR")}
	ratings := setup.engine.BuildRatings(standings, nil)
	setup.schedules.dates["TOR"] = []time.Time{day("2026-01-09")}

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "TOR", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.InDelta(t, params.HomeIceBonus-params.BackToBackPenalty, pred.Diff, 1e-9)
	assert.Contains(t, pred.KeyFactors, "TOR B2B")
}

// TestPredictGame_ExtendedRestBonus tests the rested-side bonus
func TestPredictGame_ExtendedRestBonus(t *testing.T) {
	params := models.DefaultModelParams()
	setup := setupTestEngine(params)
	standings := []models.TeamStanding{evenStanding("BOS"), evenStanding("TOR")}
	ratings := setup.engine.BuildRatings(standings, nil)
	setup.schedules.dates["BOS"] = []time.Time{day("2026-01-06")}

	pred, err := setup.engine.PredictGame(context.Background(), "BOS", "TOR", ratings, NewScheduleCache(), day("2026-01-10"))

	require.NoError(t, err)
	assert.InDelta(t, params.HomeIceBonus+params.ExtendedRestBonus, pred.Diff, 1e-9)
	assert.Contains(t, pred.KeyFactors, "BOS rested")
}

// slateParams returns parameters tuned so rest situations alone move a game
// across grade tiers, for slate-ordering tests
func slateParams() models.ModelParams {
	params := models.DefaultModelParams()
	params.HomeIceBonus = 0.06
	params.BackToBackPenalty = -0.02
	params.ThreeInFourPenalty = -0.50
	params.SkipThreshold = 0.05
	return params
}

// TestPredictSlate_OrderedByStars tests descending confidence ordering of
// grades produced in encounter order [2, 5, 0]
func TestPredictSlate_OrderedByStars(t *testing.T) {
	setup := setupTestEngine(slateParams())
	standings := []models.TeamStanding{
		evenStanding("AAA"), evenStanding("BBB"), evenStanding("CCC"),
		evenStanding("DDD"), evenStanding("EEE"), evenStanding("FFF"),
	}
	games := []models.ScheduledGame{
		{HomeAbbrev: "AAA", AwayAbbrev: "BBB"}, // no adjustments: 0.06 -> 2 stars
		{HomeAbbrev: "CCC", AwayAbbrev: "DDD"}, // away 3-in-4 flips to huge home edge -> 5 stars
		{HomeAbbrev: "EEE", AwayAbbrev: "FFF"}, // home B2B drops below skip -> 0 stars
	}
	setup.schedules.dates["DDD"] = []time.Time{day("2026-01-08"), day("2026-01-09")}
	setup.schedules.dates["EEE"] = []time.Time{day("2026-01-09")}

	preds := setup.engine.PredictSlate(context.Background(), standings, nil, games, day("2026-01-10"))

	require.Len(t, preds, 3)
	assert.Equal(t, []int{5, 2, 0}, []int{preds[0].Stars, preds[1].Stars, preds[2].Stars})
	assert.Equal(t, "DDD @ CCC", preds[0].Game)
	assert.Equal(t, "BBB @ AAA", preds[1].Game)
	assert.Equal(t, "FFF @ EEE", preds[2].Game)
}

// TestPredictSlate_TiesKeepEncounterOrder tests stable ordering on equal
// grades
func TestPredictSlate_TiesKeepEncounterOrder(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings := []models.TeamStanding{
		evenStanding("AAA"), evenStanding("BBB"),
		evenStanding("CCC"), evenStanding("DDD"),
	}
	games := []models.ScheduledGame{
		{HomeAbbrev: "AAA", AwayAbbrev: "BBB"},
		{HomeAbbrev: "CCC", AwayAbbrev: "DDD"},
	}

	preds := setup.engine.PredictSlate(context.Background(), standings, nil, games, day("2026-01-10"))

	require.Len(t, preds, 2)
	assert.Equal(t, preds[0].Stars, preds[1].Stars)
	assert.Equal(t, "BBB @ AAA", preds[0].Game)
	assert.Equal(t, "DDD @ CCC", preds[1].Game)
}

// TestPredictSlate_SkipsUnresolvedGames tests silent skipping of games with
// missing identifiers
func TestPredictSlate_SkipsUnresolvedGames(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings := []models.TeamStanding{evenStanding("AAA"), evenStanding("BBB")}
	games := []models.ScheduledGame{
		{HomeAbbrev: "AAA", AwayAbbrev: ""},
		{HomeAbbrev: "", AwayAbbrev: "BBB"},
		{HomeAbbrev: "AAA", AwayAbbrev: "BBB"},
	}

	preds := setup.engine.PredictSlate(context.Background(), standings, nil, games, day("2026-01-10"))

	require.Len(t, preds, 1)
	assert.Equal(t, "BBB @ AAA", preds[0].Game)
}

// TestPredictSlate_UnratedTeamSkipped tests that a game referencing a team
// outside the standings snapshot is dropped, not fatal
func TestPredictSlate_UnratedTeamSkipped(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings := []models.TeamStanding{evenStanding("AAA"), evenStanding("BBB")}
	games := []models.ScheduledGame{
		{HomeAbbrev: "AAA", AwayAbbrev: "ZZZ"},
		{HomeAbbrev: "AAA", AwayAbbrev: "BBB"},
	}

	preds := setup.engine.PredictSlate(context.Background(), standings, nil, games, day("2026-01-10"))

	require.Len(t, preds, 1)
	assert.Equal(t, "BBB @ AAA", preds[0].Game)
}

// TestPredictSlate_EmptyStandings tests the empty-not-error contract
func TestPredictSlate_EmptyStandings(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	games := []models.ScheduledGame{{HomeAbbrev: "AAA", AwayAbbrev: "BBB"}}

	preds := setup.engine.PredictSlate(context.Background(), nil, nil, games, day("2026-01-10"))

	assert.NotNil(t, preds)
	assert.Empty(t, preds)
}

// TestPredictSlate_NoGames tests an empty slate
func TestPredictSlate_NoGames(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings := []models.TeamStanding{evenStanding("AAA"), evenStanding("BBB")}

	preds := setup.engine.PredictSlate(context.Background(), standings, nil, nil, day("2026-01-10"))

	assert.NotNil(t, preds)
	assert.Empty(t, preds)
}

// TestPredictSlate_SharedScheduleCache tests one fetch per team across the
// whole slate
func TestPredictSlate_SharedScheduleCache(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings := []models.TeamStanding{
		evenStanding("AAA"), evenStanding("BBB"), evenStanding("CCC"),
	}
	games := []models.ScheduledGame{
		{HomeAbbrev: "AAA", AwayAbbrev: "BBB"},
		{HomeAbbrev: "AAA", AwayAbbrev: "CCC"},
	}

	setup.engine.PredictSlate(context.Background(), standings, nil, games, day("2026-01-10"))

	assert.Equal(t, 1, setup.schedules.calls["AAA"])
	assert.Equal(t, 1, setup.schedules.calls["BBB"])
	assert.Equal(t, 1, setup.schedules.calls["CCC"])
}
