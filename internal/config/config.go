package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the overtime tracker
type Config struct {
	Database    DatabaseConfig
	Sweep       SweepConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// DatabaseConfig holds storage-related configuration. Backend selects the
// document store implementation: "sqlite" or "buntdb".
type DatabaseConfig struct {
	Backend        string        `env:"FOT_DB_BACKEND"`
	Dir            string        `env:"FOT_DB_DIR"`
	Filename       string        `env:"FOT_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"FOT_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"FOT_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"FOT_DB_DIR_PERMISSIONS"`
}

// SweepConfig holds retention sweep configuration
type SweepConfig struct {
	SampleRate float64       `env:"FOT_SWEEP_SAMPLE_RATE"`
	Interval   time.Duration `env:"FOT_SWEEP_INTERVAL"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `env:"FOT_LOG_LEVEL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"FOT_APP_TIMEOUT"`
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".fot")

	return &Config{
		Database: DatabaseConfig{
			Backend:        "sqlite",
			Dir:            defaultDBDir,
			Filename:       "fot.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Sweep: SweepConfig{
			SampleRate: 0.05,
			Interval:   24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("FOT_DB_BACKEND"); backend != "" {
		c.Database.Backend = backend
	}
	if dir := os.Getenv("FOT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("FOT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("FOT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("FOT_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("FOT_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	if rate := os.Getenv("FOT_SWEEP_SAMPLE_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil {
			c.Sweep.SampleRate = r
		}
	}
	if interval := os.Getenv("FOT_SWEEP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Sweep.Interval = d
		}
	}

	if level := os.Getenv("FOT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	if timeout := os.Getenv("FOT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Backend != "sqlite" && c.Database.Backend != "buntdb" {
		return &ConfigError{Field: "database.backend", Message: "backend must be sqlite or buntdb"}
	}
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Sweep.SampleRate < 0 || c.Sweep.SampleRate > 1 {
		return &ConfigError{Field: "sweep.sample_rate", Message: "sample rate must be between 0 and 1"}
	}
	if c.Sweep.Interval <= 0 {
		return &ConfigError{Field: "sweep.interval", Message: "sweep interval must be positive"}
	}

	if c.Logging.Level == "" {
		return &ConfigError{Field: "logging.level", Message: "log level cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}
