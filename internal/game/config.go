package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration, read from DM_* environment
// variables. A .env file loaded in main can supply them for local play.
type Config struct {
	// ModeHistoryCapacity bounds retained mode transition records.
	ModeHistoryCapacity int `env:"DM_HISTORY_CAPACITY" envDefault:"10"`

	// CommandHistorySize bounds prompt command recall.
	CommandHistorySize int `env:"DM_COMMAND_HISTORY" envDefault:"50"`

	// Seed drives narrator randomness. Zero means a time-based seed.
	Seed int64 `env:"DM_SEED" envDefault:"0"`

	// NarratorFailureRate is the simulated transient failure
	// probability per narration attempt, in [0, 1].
	NarratorFailureRate float64 `env:"DM_NARRATOR_FAILURE_RATE" envDefault:"0.05"`

	// Debug enables slog diagnostics for mode transitions.
	Debug bool `env:"DM_DEBUG" envDefault:"false"`
}

// LoadConfig parses and validates configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks configured values for sanity.
func (c Config) Validate() error {
	if c.ModeHistoryCapacity < 1 {
		return fmt.Errorf("DM_HISTORY_CAPACITY must be positive, got %d", c.ModeHistoryCapacity)
	}
	if c.CommandHistorySize < 1 {
		return fmt.Errorf("DM_COMMAND_HISTORY must be positive, got %d", c.CommandHistorySize)
	}
	if c.NarratorFailureRate < 0 || c.NarratorFailureRate > 1 {
		return fmt.Errorf("DM_NARRATOR_FAILURE_RATE must be in [0, 1], got %g", c.NarratorFailureRate)
	}
	return nil
}
