package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with JOBPILOT_* environment variables. A local .env
// file, if present, is loaded first without overriding variables already set
// in the process environment.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JOBPILOT_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("JOBPILOT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("JOBPILOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
