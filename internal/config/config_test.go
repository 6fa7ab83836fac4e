package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	// Load config without a file (should use defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)

	// Verify NHL API defaults
	assert.Equal(t, "https://api-web.nhle.com", config.NHL.BaseURL)
	assert.Equal(t, "https://api.nhle.com/stats/rest/en/team", config.NHL.StatsBaseURL)
	assert.Equal(t, 15*time.Second, config.NHL.Timeout)
	assert.Equal(t, "20252026", config.NHL.SeasonID)

	// Verify Redis defaults
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "", config.Redis.Password)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 24*time.Hour, config.Redis.TTL)

	// Verify Kafka defaults
	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "daily_picks", config.Kafka.Topic)

	// Verify model defaults
	assert.Equal(t, 0.25, config.Model.WeightGoalDiff)
	assert.Equal(t, 0.20, config.Model.WeightPointPct)
	assert.Equal(t, 0.20, config.Model.WeightRecentForm)
	assert.Equal(t, 0.10, config.Model.WeightHomeRoad)
	assert.Equal(t, 0.10, config.Model.WeightSpecialTeams)
	assert.Equal(t, 0.10, config.Model.WeightShotDiff)
	assert.Equal(t, 0.05, config.Model.WeightStreak)
	assert.Equal(t, 0.035, config.Model.HomeIceBonus)
	assert.Equal(t, -0.030, config.Model.BackToBackPenalty)
	assert.Equal(t, -0.045, config.Model.ThreeInFourPenalty)
	assert.Equal(t, 0.010, config.Model.ExtendedRestBonus)
	assert.Equal(t, 0.005, config.Model.SkipThreshold)
	assert.Equal(t, 10, config.Model.EarlySeasonGP)

	// Verify scheduler defaults
	assert.True(t, config.Scheduler.Enabled)
	assert.Equal(t, "09:00", config.Scheduler.RunAt)
	assert.Equal(t, "America/New_York", config.Scheduler.Timezone)

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	// Create temporary config file
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	configContent := `
server:
  port: 9090
  read_timeout: 45s
  write_timeout: 45s

nhl:
  base_url: http://localhost:8999
  timeout: 5s

redis:
  addr: redis:6379
  ttl: 6h

kafka:
  brokers:
    - broker1:9092
    - broker2:9092
  topic: picks_v2

model:
  home_ice_bonus: 0.05
  early_season_gp: 15

scheduler:
  enabled: false

logging:
  level: debug
  format: console
`
	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, "http://localhost:8999", config.NHL.BaseURL)
	assert.Equal(t, 5*time.Second, config.NHL.Timeout)
	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, 6*time.Hour, config.Redis.TTL)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "picks_v2", config.Kafka.Topic)
	assert.Equal(t, 0.05, config.Model.HomeIceBonus)
	assert.Equal(t, 15, config.Model.EarlySeasonGP)
	assert.False(t, config.Scheduler.Enabled)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)

	// Untouched keys keep their defaults
	assert.Equal(t, 0.25, config.Model.WeightGoalDiff)
	assert.Equal(t, 0.005, config.Model.SkipThreshold)
}

// TestLoadConfig_MissingFile tests loading with a nonexistent file path
func TestLoadConfig_MissingFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestLoadConfig_EnvOverride tests environment variable overrides
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SPORTSALGO_LOGGING_LEVEL", "warn")
	t.Setenv("SPORTSALGO_REDIS_ADDR", "envhost:6390")

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "envhost:6390", config.Redis.Addr)
}

// TestToModelParams tests conversion to the engine parameter object
func TestToModelParams(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	params := config.Model.ToModelParams()

	assert.Equal(t, models.DefaultModelParams(), params)
}

// TestToModelParams_Overrides tests that tuned values flow through
func TestToModelParams_Overrides(t *testing.T) {
	mc := ModelConfig{
		WeightGoalDiff: 0.30,
		HomeIceBonus:   0.02,
		SkipThreshold:  0.01,
		EarlySeasonGP:  12,
	}

	params := mc.ToModelParams()

	assert.Equal(t, 0.30, params.Weights.GoalDiffPerGame)
	assert.Equal(t, 0.02, params.HomeIceBonus)
	assert.Equal(t, 0.01, params.SkipThreshold)
	assert.Equal(t, 12, params.EarlySeasonGP)
	// The ordered threshold table is always the fixed default.
	assert.Equal(t, models.DefaultModelParams().StarThresholds, params.StarThresholds)
}
