package predictor

import (
	"context"
	"time"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// ScheduleSource supplies a team's full season list of game dates. The engine
// fetches lazily and never more than once per team per slate run.
type ScheduleSource interface {
	TeamGameDates(ctx context.Context, abbrev string) ([]time.Time, error)
}

// ScheduleCache memoizes per-team game dates for the lifetime of one slate
// run. It is owned by that run and never shared across runs or goroutines.
type ScheduleCache struct {
	dates map[string][]time.Time
}

// NewScheduleCache returns an empty cache for one slate run.
func NewScheduleCache() *ScheduleCache {
	return &ScheduleCache{dates: make(map[string][]time.Time)}
}

// gameDates returns the cached date list for a team, fetching it on first
// use. Fetch failures degrade to an empty list (cached, so the source is
// still hit at most once) and are logged for observability.
func (e *Engine) gameDates(ctx context.Context, cache *ScheduleCache, abbrev string) []time.Time {
	if dates, ok := cache.dates[abbrev]; ok {
		return dates
	}

	dates, err := e.schedules.TeamGameDates(ctx, abbrev)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("team", abbrev).
			Msg("failed to fetch team schedule, skipping rest adjustments")
		dates = nil
	}

	normalized := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		normalized = append(normalized, dateOnly(d))
	}
	cache.dates[abbrev] = normalized
	return normalized
}

// detectRest classifies a team's fatigue state for a target date: days of
// rest since its last prior game, back-to-back when that gap is exactly one
// day, and 3-in-4 when the target game is the third or later within a
// trailing four-night window.
func (e *Engine) detectRest(ctx context.Context, cache *ScheduleCache, abbrev string, gameDate time.Time) models.RestSituation {
	result := models.RestSituation{RestDays: 1}

	dates := e.gameDates(ctx, cache, abbrev)
	if len(dates) == 0 {
		e.logger.Warn().
			Str("team", abbrev).
			Msg("no schedule data, skipping rest adjustments")
		return result
	}

	target := dateOnly(gameDate)

	var lastGame time.Time
	found := false
	for _, d := range dates {
		if d.Before(target) {
			lastGame = d
			found = true
		}
	}
	if !found {
		return result
	}

	result.RestDays = int(target.Sub(lastGame).Hours() / 24)
	result.BackToBack = result.RestDays == 1

	windowStart := target.AddDate(0, 0, -3)
	inWindow := 0
	for _, d := range dates {
		if !d.Before(windowStart) && d.Before(target) {
			inWindow++
		}
	}
	// inWindow counts prior games only; the target game itself is the +1.
	result.ThreeInFour = inWindow+1 >= 3

	return result
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
