package predictor

import "github.com/cwgitcommit11/sportsalgo/internal/models"

// BuildRatings derives a normalized TeamRating for every team in the
// standings snapshot. Normalization is league-relative, so the whole
// population is processed in one pass; ratings from different snapshots must
// not be mixed. Returns an empty map when standings are empty.
func (e *Engine) BuildRatings(
	standings []models.TeamStanding,
	teamStats map[string]models.TeamStats,
) map[string]models.TeamRating {
	raw := make(map[string]models.RawFactors, len(standings))
	for _, team := range standings {
		var stats *models.TeamStats
		if s, ok := teamStats[team.Abbrev]; ok {
			stats = &s
		}
		raw[team.Abbrev] = extractFactors(team, stats)
	}

	if len(raw) == 0 {
		return map[string]models.TeamRating{}
	}

	// Collect each factor's full population for normalization.
	cols := struct {
		goalDiff, pointPct, recentForm, specialTeams []float64
		shotDiff, streak, homePct, roadPct           []float64
	}{}
	for _, r := range raw {
		cols.goalDiff = append(cols.goalDiff, r.GoalDiffPerGame)
		cols.pointPct = append(cols.pointPct, r.PointPct)
		cols.recentForm = append(cols.recentForm, r.RecentForm)
		cols.specialTeams = append(cols.specialTeams, r.SpecialTeams)
		cols.shotDiff = append(cols.shotDiff, r.ShotDiffPerGame)
		cols.streak = append(cols.streak, r.StreakMomentum)
		cols.homePct = append(cols.homePct, r.HomePct)
		cols.roadPct = append(cols.roadPct, r.RoadPct)
	}

	w := e.params.Weights
	ratings := make(map[string]models.TeamRating, len(raw))
	for abbrev, r := range raw {
		rating := models.TeamRating{
			GoalDiffPerGame: normalize(r.GoalDiffPerGame, cols.goalDiff),
			PointPct:        normalize(r.PointPct, cols.pointPct),
			RecentForm:      normalize(r.RecentForm, cols.recentForm),
			SpecialTeams:    normalize(r.SpecialTeams, cols.specialTeams),
			ShotDiffPerGame: normalize(r.ShotDiffPerGame, cols.shotDiff),
			StreakMomentum:  normalize(r.StreakMomentum, cols.streak),
			HomePct:         normalize(r.HomePct, cols.homePct),
			RoadPct:         normalize(r.RoadPct, cols.roadPct),
			GamesPlayed:     r.GamesPlayed,
		}

		// The home/road split weight is intentionally left out here; the
		// predictor applies it per matchup with the venue-specific rate.
		rating.Composite = w.GoalDiffPerGame*rating.GoalDiffPerGame +
			w.PointPct*rating.PointPct +
			w.RecentForm*rating.RecentForm +
			w.SpecialTeams*rating.SpecialTeams +
			w.ShotDiffPerGame*rating.ShotDiffPerGame +
			w.StreakMomentum*rating.StreakMomentum

		ratings[abbrev] = rating
	}

	return ratings
}
