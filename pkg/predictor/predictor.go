// Package predictor implements the team rating and matchup prediction
// engine: a fixed-weight linear model over league-normalized performance
// factors with schedule-based situational adjustments.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

var (
	// ErrNoRatings signals that ratings could not be built because the
	// standings snapshot was empty; there is no normalization baseline.
	ErrNoRatings = errors.New("no team ratings available")

	// ErrMissingRating signals a matchup referencing a team absent from the
	// computed ratings.
	ErrMissingRating = errors.New("missing team rating")
)

// Engine turns standings snapshots into ratings and scheduled games into
// graded picks.
type Engine struct {
	params    models.ModelParams
	schedules ScheduleSource
	logger    zerolog.Logger
}

// NewEngine creates a prediction engine with the given parameters and
// schedule collaborator.
func NewEngine(params models.ModelParams, schedules ScheduleSource, logger zerolog.Logger) *Engine {
	return &Engine{
		params:    params,
		schedules: schedules,
		logger:    logger.With().Str("component", "predictor").Logger(),
	}
}

// PredictGame grades a single matchup against a prebuilt ratings set. The
// schedule cache is shared across one slate run so each team's schedule is
// fetched at most once. Returns ErrMissingRating when either side has no
// rating in the snapshot.
func (e *Engine) PredictGame(
	ctx context.Context,
	home, away string,
	ratings map[string]models.TeamRating,
	cache *ScheduleCache,
	gameDate time.Time,
) (*models.Prediction, error) {
	homeR, homeOK := ratings[home]
	awayR, awayOK := ratings[away]
	if !homeOK || !awayOK {
		return nil, fmt.Errorf("%w for %s @ %s", ErrMissingRating, away, home)
	}

	w := e.params.Weights
	homeVenue := homeR.Composite + w.HomeRoadSplit*homeR.HomePct
	awayVenue := awayR.Composite + w.HomeRoadSplit*awayR.RoadPct
	diff := homeVenue - awayVenue

	adjustments := []string{"home ice"}
	diff += e.params.HomeIceBonus

	homeRest := e.detectRest(ctx, cache, home, gameDate)
	awayRest := e.detectRest(ctx, cache, away, gameDate)

	// Penalties are home-relative; the sign flips for the away side.
	if homeRest.BackToBack {
		diff += e.params.BackToBackPenalty
		adjustments = append(adjustments, home+" B2B")
	}
	if awayRest.BackToBack {
		diff -= e.params.BackToBackPenalty
		adjustments = append(adjustments, away+" B2B")
	}

	if homeRest.ThreeInFour {
		diff += e.params.ThreeInFourPenalty
		adjustments = append(adjustments, home+" 3-in-4")
	}
	if awayRest.ThreeInFour {
		diff -= e.params.ThreeInFourPenalty
		adjustments = append(adjustments, away+" 3-in-4")
	}

	if homeRest.RestDays >= 3 {
		diff += e.params.ExtendedRestBonus
		adjustments = append(adjustments, home+" rested")
	}
	if awayRest.RestDays >= 3 {
		diff -= e.params.ExtendedRestBonus
		adjustments = append(adjustments, away+" rested")
	}

	absDiff := math.Abs(diff)
	pick := models.PickSkip
	stars := 0
	if absDiff >= e.params.SkipThreshold {
		pick = home
		if diff < 0 {
			pick = away
		}
		stars = e.starsFor(absDiff)
	}

	// Thin samples cap confidence: never upgrade, only downgrade.
	minGP := homeR.GamesPlayed
	if awayR.GamesPlayed < minGP {
		minGP = awayR.GamesPlayed
	}
	if minGP < e.params.EarlySeasonGP && stars > 2 {
		stars = 2
		adjustments = append(adjustments, "early-season cap")
	}

	keyFactors := "even matchup"
	if len(adjustments) > 0 {
		if len(adjustments) > 4 {
			adjustments = adjustments[:4]
		}
		keyFactors = strings.Join(adjustments, ", ")
	}

	return &models.Prediction{
		ID:          uuid.New(),
		GameDate:    gameDate.Format("2006-01-02"),
		Game:        away + " @ " + home,
		Home:        home,
		Away:        away,
		Pick:        pick,
		Stars:       stars,
		Diff:        math.Round(diff*10000) / 10000,
		KeyFactors:  keyFactors,
		PredictedAt: time.Now().UTC(),
	}, nil
}

// starsFor assigns a confidence grade by scanning the descending ordered
// threshold table and taking the first threshold the differential meets,
// defaulting to the lowest non-zero grade.
func (e *Engine) starsFor(absDiff float64) int {
	stars := 1
	for _, st := range e.params.StarThresholds {
		if absDiff >= st.Threshold {
			stars = st.Stars
			break
		}
	}
	return stars
}

// PredictSlate runs the full model over a day's scheduled games: one ratings
// build, one shared schedule cache, one prediction per resolvable game,
// ordered by descending stars with encounter order preserved on ties.
// Returns an empty slice when ratings cannot be built or no games resolve.
func (e *Engine) PredictSlate(
	ctx context.Context,
	standings []models.TeamStanding,
	teamStats map[string]models.TeamStats,
	games []models.ScheduledGame,
	gameDate time.Time,
) []*models.Prediction {
	ratings := e.BuildRatings(standings, teamStats)
	if len(ratings) == 0 {
		e.logger.Error().Msg("could not compute team ratings, no predictions generated")
		return []*models.Prediction{}
	}

	cache := NewScheduleCache()
	predictions := make([]*models.Prediction, 0, len(games))

	for _, game := range games {
		if game.HomeAbbrev == "" || game.AwayAbbrev == "" {
			continue
		}
		pred, err := e.PredictGame(ctx, game.HomeAbbrev, game.AwayAbbrev, ratings, cache, gameDate)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("home", game.HomeAbbrev).
				Str("away", game.AwayAbbrev).
				Msg("skipping game")
			continue
		}
		predictions = append(predictions, pred)
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Stars > predictions[j].Stars
	})

	e.logger.Info().
		Int("games", len(games)).
		Int("predictions", len(predictions)).
		Msg("slate prediction complete")

	return predictions
}
