package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Sanity  SanityConfig  `mapstructure:"sanity"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Server.RequestsPerMinute <= 0 {
		return errors.New("server.requests_per_minute must be positive")
	}
	if c.Sanity.ProjectID == "" {
		return errors.New("sanity.project_id is required")
	}
	if c.Sanity.Dataset == "" {
		return errors.New("sanity.dataset is required")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	return nil
}

// ServerAddr returns the listen address for the HTTP server.
func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// SanityConfig describes the content store project.
type SanityConfig struct {
	ProjectID  string        `mapstructure:"project_id"`
	Dataset    string        `mapstructure:"dataset"`
	APIVersion string        `mapstructure:"api_version"`
	Token      string        `mapstructure:"token"`
	UseCDN     bool          `mapstructure:"use_cdn"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// CacheConfig controls how long successful query results are reused.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ContentConfig points at an optional fixtures file replacing the built-in defaults.
type ContentConfig struct {
	DefaultsFile string `mapstructure:"defaults_file"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
