// Package config loads the puzzle settings shared by the desktop and
// terminal front-ends.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"priests-devils/river"
)

const (
	defaultReplayInterval = 500 * time.Millisecond
	defaultLogLevel       = "info"
)

var validate = validator.New()

type Config struct {
	// Priests and Devils are the totals of each kind, all starting on the left.
	Priests int `yaml:"priests" validate:"gte=0,lte=50"`
	Devils  int `yaml:"devils" validate:"gte=0,lte=50"`

	// ReplayInterval spaces the positions of an auto solve.
	ReplayInterval time.Duration `yaml:"replay_interval" validate:"gte=0"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

func Default() Config {
	t := river.DefaultTotals()
	return Config{
		Priests:        t.Priests,
		Devils:         t.Devils,
		ReplayInterval: defaultReplayInterval,
		LogLevel:       defaultLogLevel,
	}
}

// Load reads path on top of the defaults. An empty path, or a path that
// does not exist, yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Totals() river.Totals {
	return river.Totals{Priests: c.Priests, Devils: c.Devils}
}

func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds the text logger every front-end writes to stderr.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}
