// Package config loads the YAML run configuration for the roadpath CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds every knob of a roadpath run. Keys absent from the YAML file
// keep their Default() values. Strategy is empty unless set, so that a run
// without any strategy still gets the fallback warning.
type Config struct {
	Input             string `yaml:"input" validate:"required"`
	Strategy          string `yaml:"strategy"`
	Unit              string `yaml:"unit" validate:"required,max=16"`
	Directed          bool   `yaml:"directed"`
	EarlyExit         bool   `yaml:"early_exit"`
	StrictConnections bool   `yaml:"strict_connections"`
	LogLevel          string `yaml:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// Default returns the configuration used without a config file.
func Default() Config {
	return Config{
		Input:     "input/input.txt",
		Unit:      "km",
		EarlyExit: true,
		LogLevel:  "warn",
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Level maps LogLevel to a slog.Level; unknown values map to warn.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
