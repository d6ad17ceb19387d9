package config

import (
	"path/filepath"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
)

// Validate checks the configuration after defaults have been applied.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return errors.ValidationFailed("docs_dir", "must not be empty")
	}
	if c.SiteDir == "" {
		return errors.ValidationFailed("site_dir", "must not be empty")
	}
	if filepath.Clean(c.DocsDir) == filepath.Clean(c.SiteDir) {
		return errors.ValidationFailed("site_dir", "must differ from docs_dir")
	}
	if !c.Logging.Level.Valid() {
		return errors.ValidationFailed("logging.level", "unsupported value "+string(c.Logging.Level))
	}
	if !c.Logging.Format.Valid() {
		return errors.ValidationFailed("logging.format", "unsupported value "+string(c.Logging.Format))
	}
	if c.Watch.Debounce < 0 {
		return errors.ValidationFailed("watch.debounce", "must not be negative")
	}
	if c.Watch.Resync < 0 {
		return errors.ValidationFailed("watch.resync", "must not be negative")
	}
	if c.Events.Enabled() && c.Events.Subject == "" {
		return errors.ValidationFailed("events.subject", "required when events.nats_url is set")
	}
	return nil
}
