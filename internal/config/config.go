package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Fal       FalConfig       `mapstructure:"fal"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port    string   `mapstructure:"port"`
	Env     string   `mapstructure:"env"`
	APIKeys []string `mapstructure:"api_keys"`
}

// FalConfig holds credentials and endpoints for the hosted generation API.
// The queue base serves submit/status/result, the sync base serves the
// blocking subscribe calls.
type FalConfig struct {
	APIKey       string `mapstructure:"api_key"`
	SyncBaseURL  string `mapstructure:"sync_base_url"`
	QueueBaseURL string `mapstructure:"queue_base_url"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// StorageConfig controls where finished assets get archived. When disabled
// the hosted URL is returned as-is.
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Root    string `mapstructure:"root"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("fal.sync_base_url", "https://fal.run")
	v.SetDefault("fal.queue_base_url", "https://queue.fal.run")
	v.SetDefault("fal.api_key", "ENV:FAL_KEY")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("storage.enabled", true)
	v.SetDefault("storage.root", "./assets")
	v.SetDefault("database.dsn", "file:mediaroute.db?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000")
	v.SetDefault("tracing.enabled", false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	// Resolve ENV: indirections so secrets never live in the yaml file
	if strings.HasPrefix(cfg.Fal.APIKey, "ENV:") {
		envVar := strings.TrimPrefix(cfg.Fal.APIKey, "ENV:")
		val := os.Getenv(envVar)
		if val == "" {
			val = v.GetString(envVar)
		}
		cfg.Fal.APIKey = val
	}

	return &cfg, nil
}
