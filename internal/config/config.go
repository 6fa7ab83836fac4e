package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// Config holds all configuration for the daily picks service
type Config struct {
	Server    ServerConfig
	NHL       NHLConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Model     ModelConfig
	Scheduler SchedulerConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NHLConfig holds NHL API client configuration
type NHLConfig struct {
	BaseURL      string // api-web host (standings, schedules, scores)
	StatsBaseURL string // stats host (team summary)
	Timeout      time.Duration
	SeasonID     string // e.g. "20252026"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration // prediction cache TTL; tracker entries never expire
}

// KafkaConfig holds Kafka publisher configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to publish daily slates to (daily_picks)
}

// ModelConfig holds the prediction model parameters
type ModelConfig struct {
	WeightGoalDiff     float64
	WeightPointPct     float64
	WeightRecentForm   float64
	WeightHomeRoad     float64
	WeightSpecialTeams float64
	WeightShotDiff     float64
	WeightStreak       float64

	HomeIceBonus       float64
	BackToBackPenalty  float64
	ThreeInFourPenalty float64
	ExtendedRestBonus  float64

	SkipThreshold float64
	EarlySeasonGP int
}

// SchedulerConfig holds the daily run job configuration
type SchedulerConfig struct {
	Enabled  bool
	RunAt    string // "HH:MM" local to Timezone
	Timezone string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	defaults := models.DefaultModelParams()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("nhl.base_url", "https://api-web.nhle.com")
	v.SetDefault("nhl.stats_base_url", "https://api.nhle.com/stats/rest/en/team")
	v.SetDefault("nhl.timeout", 15*time.Second)
	v.SetDefault("nhl.season_id", "20252026")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "daily_picks")

	v.SetDefault("model.weight_goal_diff", defaults.Weights.GoalDiffPerGame)
	v.SetDefault("model.weight_point_pct", defaults.Weights.PointPct)
	v.SetDefault("model.weight_recent_form", defaults.Weights.RecentForm)
	v.SetDefault("model.weight_home_road", defaults.Weights.HomeRoadSplit)
	v.SetDefault("model.weight_special_teams", defaults.Weights.SpecialTeams)
	v.SetDefault("model.weight_shot_diff", defaults.Weights.ShotDiffPerGame)
	v.SetDefault("model.weight_streak", defaults.Weights.StreakMomentum)
	v.SetDefault("model.home_ice_bonus", defaults.HomeIceBonus)
	v.SetDefault("model.back_to_back_penalty", defaults.BackToBackPenalty)
	v.SetDefault("model.three_in_four_penalty", defaults.ThreeInFourPenalty)
	v.SetDefault("model.extended_rest_bonus", defaults.ExtendedRestBonus)
	v.SetDefault("model.skip_threshold", defaults.SkipThreshold)
	v.SetDefault("model.early_season_gp", defaults.EarlySeasonGP)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.run_at", "09:00")
	v.SetDefault("scheduler.timezone", "America/New_York")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("SPORTSALGO")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToModelParams converts config to the engine's immutable parameter object.
// The star-threshold table stays fixed: it is an ordered scan list, not a
// per-deployment tunable.
func (c *ModelConfig) ToModelParams() models.ModelParams {
	defaults := models.DefaultModelParams()
	return models.ModelParams{
		Weights: models.FactorWeights{
			GoalDiffPerGame: c.WeightGoalDiff,
			PointPct:        c.WeightPointPct,
			RecentForm:      c.WeightRecentForm,
			HomeRoadSplit:   c.WeightHomeRoad,
			SpecialTeams:    c.WeightSpecialTeams,
			ShotDiffPerGame: c.WeightShotDiff,
			StreakMomentum:  c.WeightStreak,
		},
		HomeIceBonus:       c.HomeIceBonus,
		BackToBackPenalty:  c.BackToBackPenalty,
		ThreeInFourPenalty: c.ThreeInFourPenalty,
		ExtendedRestBonus:  c.ExtendedRestBonus,
		StarThresholds:     defaults.StarThresholds,
		SkipThreshold:      c.SkipThreshold,
		EarlySeasonGP:      c.EarlySeasonGP,
	}
}
