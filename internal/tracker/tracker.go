// Package tracker keeps the season-long pick ledger: every graded pick is
// recorded on prediction day and resolved against final scores the next day,
// feeding an overall and per-star accuracy summary.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// Tracker stores pick outcomes in Redis. Entries are persistent; unlike the
// prediction cache they carry no TTL.
type Tracker struct {
	client *redis.Client
	logger zerolog.Logger
}

// Config holds tracker Redis configuration
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewTracker creates a Redis-backed season tracker
func NewTracker(config Config, logger zerolog.Logger) *Tracker {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &Tracker{
		client: client,
		logger: logger.With().Str("component", "tracker").Logger(),
	}
}

// entryKey builds the Redis key: tracker:{date}:{AWY @ HOM}
func entryKey(date, game string) string {
	return fmt.Sprintf("tracker:%s:%s", date, game)
}

// RecordPicks stores the day's graded picks. Skipped games are not tracked.
// Existing entries are left untouched so a re-run cannot clobber an already
// resolved result.
func (t *Tracker) RecordPicks(ctx context.Context, preds []*models.Prediction) error {
	pipe := t.client.Pipeline()

	recorded := 0
	for _, pred := range preds {
		if pred.Skipped() {
			continue
		}
		entry := models.TrackerEntry{
			Date:  pred.GameDate,
			Game:  pred.Game,
			Pick:  pred.Pick,
			Stars: pred.Stars,
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal tracker entry: %w", err)
		}
		pipe.SetNX(ctx, entryKey(pred.GameDate, pred.Game), data, 0)
		recorded++
	}

	if recorded == 0 {
		return nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record picks: %w", err)
	}

	t.logger.Info().Int("count", recorded).Msg("recorded picks in season tracker")
	return nil
}

// ResolveResults fills in result and correctness for a date's recorded picks
// from final scores, returning how many entries were resolved.
func (t *Tracker) ResolveResults(ctx context.Context, date string, results []models.GameResult) (int, error) {
	resultsByGame := make(map[string]models.GameResult, len(results))
	for _, r := range results {
		resultsByGame[r.Matchup()] = r
	}

	keys, err := t.scanKeys(ctx, fmt.Sprintf("tracker:%s:*", date))
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, key := range keys {
		data, err := t.client.Get(ctx, key).Bytes()
		if err != nil {
			t.logger.Warn().Err(err).Str("key", key).Msg("failed to get tracker entry")
			continue
		}

		var entry models.TrackerEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			t.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal tracker entry")
			continue
		}
		if entry.Resolved {
			continue
		}

		result, ok := resultsByGame[entry.Game]
		if !ok {
			continue
		}

		winner := result.Winner()
		hi, lo := result.HomeScore, result.AwayScore
		if lo > hi {
			hi, lo = lo, hi
		}
		entry.Result = fmt.Sprintf("%s %d-%d", winner, hi, lo)
		entry.Resolved = true
		entry.Correct = entry.Pick == winner

		updated, err := json.Marshal(entry)
		if err != nil {
			return resolved, fmt.Errorf("failed to marshal tracker entry: %w", err)
		}
		if err := t.client.Set(ctx, key, updated, 0).Err(); err != nil {
			return resolved, fmt.Errorf("failed to update tracker entry: %w", err)
		}
		resolved++
	}

	t.logger.Info().Str("date", date).Int("resolved", resolved).Msg("resolved pick results")
	return resolved, nil
}

// Summary computes the season-to-date accuracy rollup across all resolved
// entries.
func (t *Tracker) Summary(ctx context.Context) (*models.TrackerSummary, error) {
	keys, err := t.scanKeys(ctx, "tracker:*")
	if err != nil {
		return nil, err
	}

	summary := &models.TrackerSummary{ByStars: make(map[int]models.StarRecord)}
	for _, key := range keys {
		data, err := t.client.Get(ctx, key).Bytes()
		if err != nil {
			t.logger.Warn().Err(err).Str("key", key).Msg("failed to get tracker entry")
			continue
		}

		var entry models.TrackerEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			t.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal tracker entry")
			continue
		}
		if !entry.Resolved {
			continue
		}

		rec := summary.ByStars[entry.Stars]
		if entry.Correct {
			summary.Wins++
			rec.Wins++
		} else {
			summary.Losses++
			rec.Losses++
		}
		summary.ByStars[entry.Stars] = rec
	}

	summary.Pct = winPct(summary.Wins, summary.Losses, 1)
	stars := make([]int, 0, len(summary.ByStars))
	for s, rec := range summary.ByStars {
		rec.Pct = winPct(rec.Wins, rec.Losses, 0)
		summary.ByStars[s] = rec
		stars = append(stars, s)
	}
	sort.Ints(stars)

	parts := []string{fmt.Sprintf("Overall: %d-%d (%s)", summary.Wins, summary.Losses, summary.Pct)}
	for _, s := range stars {
		rec := summary.ByStars[s]
		parts = append(parts, fmt.Sprintf("%d*: %d-%d (%s)", s, rec.Wins, rec.Losses, rec.Pct))
	}
	summary.Text = strings.Join(parts, " | ")

	return summary, nil
}

// winPct formats wins/(wins+losses) as a percentage with the given number of
// decimal places, or "N/A" with no resolved picks.
func winPct(wins, losses int, places int32) string {
	total := wins + losses
	if total == 0 {
		return "N/A"
	}
	pct := decimal.NewFromInt(int64(wins * 100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(places)
	return pct.String() + "%"
}

// scanKeys collects all keys matching pattern
func (t *Tracker) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = t.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// Ping checks Redis connection
func (t *Tracker) Ping(ctx context.Context) error {
	return t.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (t *Tracker) Close() error {
	return t.client.Close()
}
