// Package config loads the CLI runtime settings. Sources are applied in
// order, later ones overriding earlier ones:
//
//	defaults -> JSON file (-c/-config) -> .env / environment -> flags
package config

import "time"

// Config holds runtime settings for the JobPilot CLI.
//
// Fields:
//   - APIBaseURL: base URL of the JobPilot REST API, without a trailing slash.
//   - RequestTimeout: per-request timeout for all API calls.
//   - LogLevel: debug|info|warn|error.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
