// Package config provides configuration loading and validation for dialogcoach.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tessro/dialogcoach/internal/paths"
	"github.com/tessro/dialogcoach/internal/pipeline"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Config represents the dialogcoach configuration file.
type Config struct {
	// LogLevel controls log verbosity ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// Roster is a path to a roster file (.toml or .yaml). Empty uses built-in data.
	Roster string `toml:"roster"`

	// DefaultCoach is the coach whose roster is shown on start.
	DefaultCoach string `toml:"default_coach"`

	// Demo configures synthetic roster augmentation.
	Demo DemoConfig `toml:"demo"`
}

// DemoConfig configures the synthetic employees appended to one coach's roster.
type DemoConfig struct {
	// Coach is the augmented coach. Empty disables augmentation.
	Coach *string `toml:"coach"`
	Count *int    `toml:"count"`
	// Seed drives generation. Zero picks a time-based seed.
	Seed uint64 `toml:"seed"`
}

// DefaultDemoCoach is the coach augmented when [demo].coach is unset.
const DefaultDemoCoach = "coach-1"

// LoadFromPath loads the config from a specific path.
// Returns nil config and nil error if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load loads the config from paths.ConfigPath().
// Returns nil config and nil error if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// GetLogLevel returns the configured log level, or DefaultLogLevel.
func (c *Config) GetLogLevel() string {
	if c == nil || c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// GetRoster returns the configured roster path, or "" for built-in data.
func (c *Config) GetRoster() string {
	if c == nil {
		return ""
	}
	return c.Roster
}

// GetDefaultCoach returns the configured starting coach, or "" to use
// the dataset's own default.
func (c *Config) GetDefaultCoach() string {
	if c == nil {
		return ""
	}
	return c.DefaultCoach
}

// GetDemoCoach returns the coach whose roster is augmented.
func (c *Config) GetDemoCoach() string {
	if c == nil || c.Demo.Coach == nil {
		return DefaultDemoCoach
	}
	return *c.Demo.Coach
}

// GetDemoCount returns the number of synthetic employees to generate.
func (c *Config) GetDemoCount() int {
	if c == nil || c.Demo.Count == nil {
		return pipeline.DefaultSyntheticCount
	}
	return *c.Demo.Count
}

// GetDemoSeed returns the configured seed. Zero means time-based.
func (c *Config) GetDemoSeed() uint64 {
	if c == nil {
		return 0
	}
	return c.Demo.Seed
}
