package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Load a .env file into the process environment if one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// A missing .env file is not an error; existing env vars win over it.
	_ = godotenv.Load()

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBBackend  *string
	DBDir      *string
	DBFilename *string

	SweepSampleRate *float64
	SweepInterval   *time.Duration

	LogLevel *string

	Timeout *time.Duration
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBBackend != nil {
		config.Database.Backend = *overrides.DBBackend
	}
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}

	if overrides.SweepSampleRate != nil {
		config.Sweep.SampleRate = *overrides.SweepSampleRate
	}
	if overrides.SweepInterval != nil {
		config.Sweep.Interval = *overrides.SweepInterval
	}

	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
}
