package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// RedisCache caches graded predictions in Redis, keyed by game date and
// matchup, so the HTTP API can serve picks without re-running the model
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 24 * time.Hour
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// predictionKey builds the Redis key: picks:{date}:{AWY@HOM}
func predictionKey(date, home, away string) string {
	return fmt.Sprintf("picks:%s:%s@%s", date, away, home)
}

// Set caches one prediction
func (c *RedisCache) Set(ctx context.Context, pred *models.Prediction) error {
	key := predictionKey(pred.GameDate, pred.Home, pred.Away)

	data, err := json.Marshal(pred)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached prediction")

	return nil
}

// Get retrieves one cached prediction
func (c *RedisCache) Get(ctx context.Context, date, home, away string) (*models.Prediction, error) {
	key := predictionKey(date, home, away)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("prediction not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var pred models.Prediction
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prediction: %w", err)
	}

	return &pred, nil
}

// SetSlate caches a full day's predictions in one pipeline
func (c *RedisCache) SetSlate(ctx context.Context, preds []*models.Prediction) error {
	if len(preds) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()

	for _, pred := range preds {
		key := predictionKey(pred.GameDate, pred.Home, pred.Away)
		data, err := json.Marshal(pred)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to marshal prediction")
			continue
		}
		pipe.Set(ctx, key, data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(preds)).
		Msg("cached slate of predictions")

	return nil
}

// GetByDate retrieves all cached predictions for a date, ordered by
// descending stars with the matchup label as a tiebreak for stable output
func (c *RedisCache) GetByDate(ctx context.Context, date string) ([]*models.Prediction, error) {
	pattern := fmt.Sprintf("picks:%s:*", date)

	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	preds := make([]*models.Prediction, 0, len(keys))
	for _, key := range keys {
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var pred models.Prediction
		if err := json.Unmarshal(data, &pred); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal prediction")
			continue
		}

		preds = append(preds, &pred)
	}

	sortPredictions(preds)
	return preds, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
