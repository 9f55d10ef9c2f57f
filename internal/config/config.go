package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	HTTPAddr string `mapstructure:"HTTP_ADDR"`

	// Local cache.
	SQLitePath string `mapstructure:"SQLITE_PATH"`

	// Remote document store. Backend is "http", "postgres", or "memory"
	// (development only).
	RemoteBackend string `mapstructure:"REMOTE_BACKEND"`
	RemoteBaseURL string `mapstructure:"REMOTE_BASE_URL"`
	PostgresDSN   string `mapstructure:"POSTGRES_DSN"`

	// Auth. AuthToken is the device's session token; in development it doubles
	// as the accepted bearer token.
	AuthServiceURL string `mapstructure:"AUTH_SERVICE_URL"`
	AuthToken      string `mapstructure:"AUTH_TOKEN"`
	DevUserID      string `mapstructure:"DEV_USER_ID"`
	DevUserName    string `mapstructure:"DEV_USER_NAME"`
}

// Load reads configuration from config.yaml in path (optional) and the
// environment, environment winning.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8088")
	v.SetDefault("SQLITE_PATH", "data/mindfuljot.db")
	v.SetDefault("REMOTE_BACKEND", "memory")
	v.SetDefault("AUTH_TOKEN", "MOCK-TOKEN")
	v.SetDefault("DEV_USER_ID", "u1")
	v.SetDefault("DEV_USER_NAME", "Demo User")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case "development", "staging", "production":
	default:
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.SQLitePath == "" {
		return errors.New("SQLITE_PATH is required")
	}
	switch c.RemoteBackend {
	case "http":
		if c.RemoteBaseURL == "" {
			return errors.New("REMOTE_BASE_URL is required when REMOTE_BACKEND=http")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when REMOTE_BACKEND=postgres")
		}
	case "memory":
		if c.Env != "development" {
			return errors.New("REMOTE_BACKEND=memory is only valid in development")
		}
	default:
		return errors.New("REMOTE_BACKEND must be one of: http, postgres, memory")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	return nil
}
