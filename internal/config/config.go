// Package config loads settings from .env files, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeguess"
)

// Environment variables read by FromEnv.
const (
	EnvAddr          = "CUBEGUESS_ADDR"
	EnvLogLevel      = "CUBEGUESS_LOG_LEVEL"
	EnvFeedbackDelay = "CUBEGUESS_FEEDBACK_DELAY"
	EnvStrategy      = "CUBEGUESS_STRATEGY"
	EnvSessionTTL    = "CUBEGUESS_SESSION_TTL"
	EnvClientOrigin  = "CUBEGUESS_CLIENT_ORIGIN"
	EnvLogDir        = "CUBEGUESS_LOG_DIR"
)

// Config holds every tunable setting.
type Config struct {
	Addr          string
	LogLevel      string
	FeedbackDelay time.Duration
	Strategy      string
	SessionTTL    time.Duration
	ClientOrigin  string
	LogDir        string // empty means ~/.cubeguess/logs
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		FeedbackDelay: cubeguess.DefaultFeedbackDelay,
		Strategy:      cubeguess.StrategyRotation.String(),
		SessionTTL:    30 * time.Minute,
		ClientOrigin:  "*",
	}
}

// Load reads .env files and then the environment. With no files it reads
// ./.env if present; named files must exist.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// A missing .env is normal
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Default(), fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv overlays values from getenv onto the defaults. It only reports
// values that cannot be parsed; call Validate once every layer is applied.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvStrategy); v != "" {
		cfg.Strategy = v
	}
	if v := getenv(EnvClientOrigin); v != "" {
		cfg.ClientOrigin = v
	}
	if v := getenv(EnvLogDir); v != "" {
		cfg.LogDir = v
	}
	if v := getenv(EnvFeedbackDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFeedbackDelay, err)
		}
		cfg.FeedbackDelay = d
	}
	if v := getenv(EnvSessionTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSessionTTL, err)
		}
		cfg.SessionTTL = d
	}

	return cfg, nil
}

// Validate checks the settings for values the game cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.FeedbackDelay < 0 {
		errs = append(errs, fmt.Errorf("feedback delay must not be negative, got %s", c.FeedbackDelay))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session TTL must be positive, got %s", c.SessionTTL))
	}
	if _, err := cubeguess.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// SessionOptions converts the game settings into session options.
func (c Config) SessionOptions() ([]cubeguess.Option, error) {
	strategy, err := cubeguess.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	return []cubeguess.Option{
		cubeguess.WithStrategy(strategy),
		cubeguess.WithFeedbackDelay(c.FeedbackDelay),
	}, nil
}
