package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
	"github.com/cwgitcommit11/sportsalgo/pkg/predictor"
)

const dateLayout = "2006-01-02"

// PicksService orchestrates the daily run: resolve yesterday's results,
// predict today's slate, then cache, track, and publish the picks.
type PicksService struct {
	source    DataSource
	predictor SlatePredictor
	cache     Cache
	tracker   Tracker
	publisher Publisher
	logger    zerolog.Logger
}

// NewPicksService creates a new picks service
func NewPicksService(
	source DataSource,
	predictor SlatePredictor,
	cache Cache,
	tracker Tracker,
	publisher Publisher,
	logger zerolog.Logger,
) *PicksService {
	return &PicksService{
		source:    source,
		predictor: predictor,
		cache:     cache,
		tracker:   tracker,
		publisher: publisher,
		logger:    logger.With().Str("component", "picks_service").Logger(),
	}
}

// RunDaily executes one full daily cycle for the given date. Fetch failures
// for standings or the schedule abort the run; cache, tracker, and publisher
// failures degrade to warnings so a flaky dependency cannot kill the day's
// picks.
func (s *PicksService) RunDaily(ctx context.Context, date time.Time) ([]*models.Prediction, error) {
	dateStr := date.Format(dateLayout)
	s.logger.Info().Str("date", dateStr).Msg("starting daily run")

	s.resolveYesterday(ctx, date)

	games, err := s.source.GamesOn(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	if len(games) == 0 {
		s.logger.Info().Str("date", dateStr).Msg("no games scheduled")
		return []*models.Prediction{}, nil
	}

	standings, err := s.source.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}
	if len(standings) == 0 {
		return nil, fmt.Errorf("standings snapshot is empty: %w", predictor.ErrNoRatings)
	}

	teamStats, err := s.source.TeamStats(ctx, standings)
	if err != nil {
		// Stats are supplemental; the engine falls back to neutral factors.
		s.logger.Warn().Err(err).Msg("failed to fetch team stats, predicting without them")
		teamStats = nil
	}

	preds := s.predictor.PredictSlate(ctx, standings, teamStats, games, date)

	if err := s.cache.SetSlate(ctx, preds); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache slate")
	}
	if err := s.tracker.RecordPicks(ctx, preds); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record picks in tracker")
	}
	if err := s.publisher.PublishDailyPicks(ctx, dateStr, preds); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish daily picks")
	}

	s.logger.Info().
		Str("date", dateStr).
		Int("games", len(games)).
		Int("predictions", len(preds)).
		Msg("daily run complete")

	return preds, nil
}

// resolveYesterday grades the previous day's recorded picks against final
// scores. Failures only log; grading catches up on the next run because
// unresolved entries stay unresolved.
func (s *PicksService) resolveYesterday(ctx context.Context, date time.Time) {
	yesterday := date.AddDate(0, 0, -1)
	yesterdayStr := yesterday.Format(dateLayout)

	results, err := s.source.ScoresOn(ctx, yesterday)
	if err != nil {
		s.logger.Warn().Err(err).Str("date", yesterdayStr).Msg("failed to fetch scores, skipping result resolution")
		return
	}
	if len(results) == 0 {
		return
	}

	resolved, err := s.tracker.ResolveResults(ctx, yesterdayStr, results)
	if err != nil {
		s.logger.Warn().Err(err).Str("date", yesterdayStr).Msg("failed to resolve results")
		return
	}

	s.logger.Info().
		Str("date", yesterdayStr).
		Int("resolved", resolved).
		Msg("resolved yesterday's picks")
}

// GetPicks retrieves a day's cached predictions, ordered by descending stars.
func (s *PicksService) GetPicks(ctx context.Context, date string) ([]*models.Prediction, error) {
	preds, err := s.cache.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve picks: %w", err)
	}

	s.logger.Debug().
		Str("date", date).
		Int("count", len(preds)).
		Msg("retrieved picks by date")

	return preds, nil
}

// GetTrackerSummary returns the season-to-date accuracy rollup.
func (s *PicksService) GetTrackerSummary(ctx context.Context) (*models.TrackerSummary, error) {
	summary, err := s.tracker.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute tracker summary: %w", err)
	}

	return summary, nil
}
