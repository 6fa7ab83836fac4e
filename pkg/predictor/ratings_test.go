package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// testLeague returns a small league with varied records plus stats for every
// team except SEA
func testLeague() ([]models.TeamStanding, map[string]models.TeamStats) {
	standings := []models.TeamStanding{
		{
			Abbrev: "BOS", GamesPlayed: 20, PointPct: 0.700, GoalsFor: 75, GoalsAgainst: 50,
			HomeWins: 8, HomeLosses: 1, HomeOtLosses: 1, RoadWins: 6, RoadLosses: 3, RoadOtLosses: 1,
			L10Wins: 8, L10Losses: 1, L10OtLosses: 1, StreakCode: "W", StreakCount: 5,
		},
		{
			Abbrev: "TOR", GamesPlayed: 21, PointPct: 0.595, GoalsFor: 68, GoalsAgainst: 62,
			HomeWins: 7, HomeLosses: 3, HomeOtLosses: 0, RoadWins: 5, RoadLosses: 5, RoadOtLosses: 1,
			L10Wins: 6, L10Losses: 3, L10OtLosses: 1, StreakCode: "L", StreakCount: 1,
		},
		{
			Abbrev: "CHI", GamesPlayed: 19, PointPct: 0.368, GoalsFor: 45, GoalsAgainst: 70,
			HomeWins: 4, HomeLosses: 6, HomeOtLosses: 0, RoadWins: 2, RoadLosses: 6, RoadOtLosses: 1,
			L10Wins: 2, L10Losses: 7, L10OtLosses: 1, StreakCode: "L", StreakCount: 4,
		},
		{
			Abbrev: "SEA", GamesPlayed: 20, PointPct: 0.500, GoalsFor: 58, GoalsAgainst: 60,
			HomeWins: 6, HomeLosses: 4, HomeOtLosses: 0, RoadWins: 4, RoadLosses: 5, RoadOtLosses: 1,
			L10Wins: 5, L10Losses: 4, L10OtLosses: 1, StreakCode: "OT", StreakCount: 2,
		},
	}
	teamStats := map[string]models.TeamStats{
		"BOS": {PowerPlayPct: 0.26, PenaltyKillPct: 0.84, ShotsForPerGame: 33.0, ShotsAgainstPerGame: 27.5},
		"TOR": {PowerPlayPct: 0.22, PenaltyKillPct: 0.79, ShotsForPerGame: 31.0, ShotsAgainstPerGame: 30.0},
		"CHI": {PowerPlayPct: 0.15, PenaltyKillPct: 0.74, ShotsForPerGame: 27.0, ShotsAgainstPerGame: 33.5},
	}
	return standings, teamStats
}

// TestBuildRatings_EmptyStandings tests that an empty league yields no ratings
func TestBuildRatings_EmptyStandings(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())

	ratings := setup.engine.BuildRatings(nil, nil)

	assert.Empty(t, ratings)
}

// TestBuildRatings_NormalizedRange tests that every normalized factor lies in
// [0,1] and the composite excludes the venue split weight
func TestBuildRatings_NormalizedRange(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings, teamStats := testLeague()

	ratings := setup.engine.BuildRatings(standings, teamStats)

	require.Len(t, ratings, 4)
	for abbrev, r := range ratings {
		for name, v := range map[string]float64{
			"goal_diff": r.GoalDiffPerGame,
			"point_pct": r.PointPct,
			"form":      r.RecentForm,
			"special":   r.SpecialTeams,
			"shots":     r.ShotDiffPerGame,
			"streak":    r.StreakMomentum,
			"home":      r.HomePct,
			"road":      r.RoadPct,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s %s", abbrev, name)
			assert.LessOrEqual(t, v, 1.0, "%s %s", abbrev, name)
		}
		// Weights excluding the home/road split sum to 0.90.
		assert.LessOrEqual(t, r.Composite, 0.90+1e-9, abbrev)
		assert.GreaterOrEqual(t, r.Composite, 0.0, abbrev)
	}

	// The best team on every factor should out-rate the worst.
	assert.Greater(t, ratings["BOS"].Composite, ratings["CHI"].Composite)
}

// TestBuildRatings_IdenticalLeague tests that zero spread on every factor
// maps all teams to the exact midpoint
func TestBuildRatings_IdenticalLeague(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings := []models.TeamStanding{
		evenStanding("AAA"), evenStanding("BBB"), evenStanding("CCC"),
	}

	ratings := setup.engine.BuildRatings(standings, nil)

	require.Len(t, ratings, 3)
	for abbrev, r := range ratings {
		assert.InDelta(t, 0.5, r.GoalDiffPerGame, 1e-9, abbrev)
		assert.InDelta(t, 0.5, r.PointPct, 1e-9, abbrev)
		assert.InDelta(t, 0.5, r.RecentForm, 1e-9, abbrev)
		assert.InDelta(t, 0.5, r.HomePct, 1e-9, abbrev)
		assert.InDelta(t, 0.5, r.RoadPct, 1e-9, abbrev)
		// Composite = 0.5 * (sum of the six non-venue weights) = 0.5 * 0.90.
		assert.InDelta(t, 0.45, r.Composite, 1e-9, abbrev)
	}
}

// TestBuildRatings_OrderInvariance tests that input permutation does not
// change the resulting ratings
func TestBuildRatings_OrderInvariance(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings, teamStats := testLeague()

	forward := setup.engine.BuildRatings(standings, teamStats)

	reversed := make([]models.TeamStanding, len(standings))
	for i, s := range standings {
		reversed[len(standings)-1-i] = s
	}
	backward := setup.engine.BuildRatings(reversed, teamStats)

	assert.Equal(t, forward, backward)
}

// TestBuildRatings_MissingStatsEntry tests that a team without supplemental
// stats still rates and the league build succeeds
func TestBuildRatings_MissingStatsEntry(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings, teamStats := testLeague()
	_, hasSEA := teamStats["SEA"]
	require.False(t, hasSEA)

	ratings := setup.engine.BuildRatings(standings, teamStats)

	require.Len(t, ratings, 4)
	assert.Contains(t, ratings, "SEA")
}

// TestBuildRatings_StatsMapEntirelyEmpty tests the standings-only mode
func TestBuildRatings_StatsMapEntirelyEmpty(t *testing.T) {
	setup := setupTestEngine(models.DefaultModelParams())
	standings, _ := testLeague()

	ratings := setup.engine.BuildRatings(standings, nil)

	require.Len(t, ratings, 4)
	// All raw special-teams values collapse to the 0.5 default, so the
	// normalized factor is the zero-spread midpoint for every team.
	for abbrev, r := range ratings {
		assert.InDelta(t, 0.5, r.SpecialTeams, 1e-9, abbrev)
		assert.InDelta(t, 0.5, r.ShotDiffPerGame, 1e-9, abbrev)
	}
}
