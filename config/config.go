package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the settings of both the server and the CLI client. Every
// key is read from the environment, optionally seeded by a .env file.
type Config struct {
	Port        string        `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel    string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	DBDriver    string        `mapstructure:"DB_DRIVER" validate:"oneof=sqlite pgx"`
	DBPath      string        `mapstructure:"DB_PATH" validate:"required_if=DBDriver sqlite"`
	DatabaseURL string        `mapstructure:"DATABASE_URL" validate:"required_if=DBDriver pgx"`
	Endpoint    string        `mapstructure:"PROFORMA_ENDPOINT" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"PROFORMA_TIMEOUT" validate:"gte=0"`
}

var defaults = map[string]any{
	"PORT":              "8080",
	"LOG_LEVEL":         "info",
	"DB_DRIVER":         "sqlite",
	"DB_PATH":           "./data/proforma.db",
	"DATABASE_URL":      "",
	"PROFORMA_ENDPOINT": "http://localhost:8080/api/v1/proformaInvoice",
	"PROFORMA_TIMEOUT":  "30s",
}

// Load reads the configuration. Files named in envFiles are loaded into the
// environment first; a missing file is not an error. Without arguments
// ".env" is tried.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			slog.Debug("env file not loaded", "file", f, "error", err)
		}
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
