package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables that override configuration file values.
const (
	EnvDocsDir   = "DOCFEATURES_DOCS_DIR"
	EnvSiteDir   = "DOCFEATURES_SITE_DIR"
	EnvLogLevel  = "DOCFEATURES_LOG_LEVEL"
	EnvLogFormat = "DOCFEATURES_LOG_FORMAT"
	EnvNATSURL   = "DOCFEATURES_NATS_URL"
	EnvDebounce  = "DOCFEATURES_WATCH_DEBOUNCE"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from .env/.env.local files.
// Existing process environment variables are not overwritten.
func loadEnvFile() {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		_ = godotenv.Load(envPath)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDocsDir); v != "" {
		cfg.DocsDir = v
	}
	if v := os.Getenv(EnvSiteDir); v != "" {
		cfg.SiteDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = LogFormat(v)
	}
	if v := os.Getenv(EnvNATSURL); v != "" {
		cfg.Events.NATSURL = v
	}
	if v := os.Getenv(EnvDebounce); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Watch.Debounce = d
		}
	}
}
