package events

import "git.home.luguber.info/inful/docfeatures/internal/config"

// FromConfig returns a NATSPublisher when events are enabled, else a NoopPublisher.
func FromConfig(cfg config.EventsConfig) (Publisher, error) {
	if !cfg.Enabled() {
		return NoopPublisher{}, nil
	}
	return NewNATSPublisher(cfg.NATSURL, cfg.Subject)
}
