package predictor

import "github.com/cwgitcommit11/sportsalgo/internal/models"

// normalize min-max scales value into [0, 1] against the full league
// population for that factor. A league with zero spread maps every team to
// the neutral midpoint.
func normalize(value float64, all []float64) float64 {
	lo, hi := all[0], all[0]
	for _, v := range all[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return 0.5
	}
	return (value - lo) / (hi - lo)
}

// pointRate converts a W/L/OTL split into a point percentage, counting a win
// as two points and an overtime loss as one. Zero games yields the neutral
// midpoint rather than a divide-by-zero.
func pointRate(wins, losses, otLosses int) float64 {
	gp := wins + losses + otLosses
	if gp == 0 {
		return 0.5
	}
	return float64(wins*2+otLosses) / float64(gp*2)
}

// extractFactors computes one team's raw factor set from its standings row
// and optional supplemental stats. Pure; missing stats degrade to neutral
// defaults so one team's thin data never blocks the league build.
func extractFactors(team models.TeamStanding, stats *models.TeamStats) models.RawFactors {
	gp := team.GamesPlayed
	if gp < 1 {
		gp = 1
	}

	specialTeams := 0.5
	shotDiff := 0.0
	if stats != nil {
		specialTeams = (stats.PowerPlayPct + stats.PenaltyKillPct) / 2.0
		shotDiff = stats.ShotsForPerGame - stats.ShotsAgainstPerGame
	}

	// W streaks count positive, L streaks negative, OT streaks at half weight.
	streak := float64(team.StreakCount) * 0.5
	switch team.StreakCode {
	case "W":
		streak = float64(team.StreakCount)
	case "L":
		streak = -float64(team.StreakCount)
	}

	return models.RawFactors{
		GoalDiffPerGame: float64(team.GoalsFor-team.GoalsAgainst) / float64(gp),
		PointPct:        team.PointPct,
		RecentForm:      pointRate(team.L10Wins, team.L10Losses, team.L10OtLosses),
		HomePct:         pointRate(team.HomeWins, team.HomeLosses, team.HomeOtLosses),
		RoadPct:         pointRate(team.RoadWins, team.RoadLosses, team.RoadOtLosses),
		SpecialTeams:    specialTeams,
		ShotDiffPerGame: shotDiff,
		StreakMomentum:  streak,
		GamesPlayed:     gp,
	}
}
