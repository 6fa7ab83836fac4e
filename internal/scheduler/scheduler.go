// Package scheduler runs the daily prediction cycle at a configured local
// time, typically each morning before puck drop.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/cwgitcommit11/sportsalgo/internal/config"
	"github.com/cwgitcommit11/sportsalgo/internal/service"
)

// Scheduler triggers the picks service's daily run on a fixed schedule
type Scheduler struct {
	s      gocron.Scheduler
	svc    *service.PicksService
	runAt  gocron.AtTime
	logger zerolog.Logger
}

// NewScheduler creates a scheduler in the configured timezone
func NewScheduler(cfg config.SchedulerConfig, svc *service.PicksService, logger zerolog.Logger) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	hour, minute, err := parseRunAt(cfg.RunAt)
	if err != nil {
		return nil, err
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:      s,
		svc:    svc,
		runAt:  gocron.NewAtTime(uint(hour), uint(minute), 0),
		logger: logger.With().Str("component", "scheduler").Logger(),
	}, nil
}

// parseRunAt parses a "HH:MM" clock time
func parseRunAt(runAt string) (int, int, error) {
	parts := strings.Split(runAt, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid run_at %q: expected HH:MM", runAt)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid run_at hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid run_at minute %q", parts[1])
	}
	return hour, minute, nil
}

// Start registers the daily job and begins the schedule
func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(s.runAt)),
		gocron.NewTask(s.runDaily),
	)
	if err != nil {
		return fmt.Errorf("failed to create daily picks job: %w", err)
	}

	s.s.Start()
	s.logger.Info().Msg("scheduler started")
	return nil
}

// Stop shuts the scheduler down, waiting for a running job to finish
func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	preds, err := s.svc.RunDaily(ctx, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Msg("daily run failed")
		return
	}

	s.logger.Info().Int("predictions", len(preds)).Msg("scheduled daily run complete")
}
