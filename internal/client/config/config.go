// Package config loads runtime settings for the inspector client.
//
// Sources are applied in order, later ones winning: built-in defaults, the
// INSPECTOR_API_URL environment variable, a JSON config file (-c/-config),
// and command-line flags.
package config

import "os"

// Config holds runtime settings for the inspector client.
type Config struct {
	// BaseURL is the backend's base URL, e.g. http://localhost:8000.
	BaseURL string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("INSPECTOR_API_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("INSPECTOR_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
