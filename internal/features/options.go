package features

import (
	"log/slog"

	"git.home.luguber.info/inful/docfeatures/internal/metrics"
)

type options struct {
	logger   *slog.Logger
	recorder metrics.Recorder
	dryRun   bool
}

// Option configures a Copy run.
type Option func(*options)

// WithLogger sets the logger used for the per-file messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithDryRun reports what would be copied without touching the destination.
func WithDryRun(dryRun bool) Option {
	return func(o *options) { o.dryRun = dryRun }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
