package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	API       APIConfig       `mapstructure:"api"`
	Database  DatabaseConfig
	Redis     RedisConfig
	Feedback  FeedbackConfig  `mapstructure:"feedback"`
	EventBus  EventBusConfig  `mapstructure:"event_bus"`
	Security  SecurityConfig  `mapstructure:"security"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flag set from the command line, not the config file.
	MigrateOnly bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type APIConfig struct {
	Title       string `mapstructure:"title"`
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type FeedbackConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	TimeoutSeconds time.Duration `mapstructure:"timeout_seconds"`
}

// EventBusConfig feature-flags the publisher: an empty BaseURL disables it.
type EventBusConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	TimeoutSeconds time.Duration `mapstructure:"timeout_seconds"`
}

// SecurityConfig is a placeholder carried over from the service contract.
// Nothing in this core signs or verifies tokens.
type SecurityConfig struct {
	SecretKey                string `mapstructure:"secret_key"`
	Algorithm                string `mapstructure:"algorithm"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SOFT_SKILLS")
	viper.AutomaticEnv()

	viper.BindEnv("database.url", "DATABASE_URL")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	viper.BindEnv("feedback.base_url", "FEEDBACK_SERVICE_URL")
	viper.BindEnv("event_bus.base_url", "EVENT_BUS_URL")

	viper.BindEnv("security.secret_key", "SECRET_KEY")

	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("feedback.timeout_seconds", 30)
	viper.SetDefault("event_bus.timeout_seconds", 10)
	viper.SetDefault("rate_limit.max_requests", 100000)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Feedback.TimeoutSeconds = cfg.Feedback.TimeoutSeconds * time.Second
	cfg.EventBus.TimeoutSeconds = cfg.EventBus.TimeoutSeconds * time.Second

	return &cfg, nil
}
