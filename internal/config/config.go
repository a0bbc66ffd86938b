// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// NewConfig loads configuration from the environment (and an optional .env file)
// with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.requests_per_minute", 500)

	v.SetDefault("sanity.dataset", "production")
	v.SetDefault("sanity.api_version", "2024-01-01")
	v.SetDefault("sanity.use_cdn", true)
	v.SetDefault("sanity.timeout", 5*time.Second)

	v.SetDefault("cache.ttl", time.Minute)

	v.SetDefault("content.defaults_file", "")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.port",
		"server.shutdown_timeout",
		"server.requests_per_minute",
		"sanity.project_id",
		"sanity.dataset",
		"sanity.api_version",
		"sanity.token",
		"sanity.use_cdn",
		"sanity.timeout",
		"cache.ttl",
		"content.defaults_file",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
