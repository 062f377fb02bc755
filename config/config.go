// Package config loads the stepstar run configuration from YAML and
// validates it with struct tags. Flags given on the command line override
// file values before Validate runs.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DefaultDelay is the pause between paced steps.
const DefaultDelay = time.Second

var validate = validator.New()

// Config is one search run.
type Config struct {
	// Scenario is the path of the scenario YAML file.
	Scenario string `yaml:"scenario" validate:"required"`
	// Heuristic names a heuristic.Policy; empty uses the scenario's choice.
	Heuristic string `yaml:"heuristic" validate:"omitempty,oneof=zero manhattan euclidean squared-euclidean chebyshev octile hops exact"`
	// Delay between steps; 0 steps as fast as possible.
	Delay time.Duration `yaml:"delay" validate:"gte=0"`

	MaxExpansions  int     `yaml:"max_expansions" validate:"gte=0"`
	ExpansionRatio float64 `yaml:"expansion_ratio" validate:"gte=0"`
	TieBreak       string  `yaml:"tie_break" validate:"omitempty,oneof=insertion position"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
	// Metrics prints a metrics summary when the run ends.
	Metrics bool `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Delay:     DefaultDelay,
		TieBreak:  "insertion",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads path over Default with strict field checking. It does not
// validate; call Validate once overrides are applied.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

// Normalize trims and lowercases the enumerated fields so that "Octile" and
// "octile" name the same policy. Call it before Validate.
func (c *Config) Normalize() {
	for _, f := range []*string{&c.Heuristic, &c.TieBreak, &c.LogLevel, &c.LogFormat} {
		*f = strings.ToLower(strings.TrimSpace(*f))
	}
}

// Validate checks the struct tags and reports the first failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalid, e.Field())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalid, e.Field(), e.Param(), e.Value())
	case "gte":
		return fmt.Errorf("%w: %s must be at least %s", ErrInvalid, e.Field(), e.Param())
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalid, e.Field(), e.Tag())
	}
}

// SlogLevel maps LogLevel to a slog.Level. Unknown names map to Info.
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
