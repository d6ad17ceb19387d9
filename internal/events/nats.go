package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
	"git.home.luguber.info/inful/docfeatures/internal/logfields"
)

const natsConnectTimeout = 5 * time.Second

// NATSPublisher publishes events as JSON on a core NATS subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to url and publishes on subject.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	if url == "" {
		return nil, errors.ValidationFailed("events.nats_url", "must not be empty")
	}
	if subject == "" {
		return nil, errors.ValidationFailed("events.subject", "must not be empty")
	}

	conn, err := nats.Connect(url,
		nats.Name("docfeatures"),
		nats.Timeout(natsConnectTimeout),
	)
	if err != nil {
		return nil, errors.PublishFailed(subject, fmt.Errorf("failed to connect to NATS: %w", err)).
			WithContext("url", url)
	}

	slog.Debug("NATS publisher connected", "url", url, "subject", subject)
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// Publish encodes ev and waits for the server to acknowledge the flush.
func (p *NATSPublisher) Publish(ctx context.Context, ev FeaturesCopied) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.InternalError("failed to marshal event", err)
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		return errors.PublishFailed(p.subject, err)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, natsConnectTimeout)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.PublishFailed(p.subject, err)
	}

	slog.Debug("Published features copied event",
		logfields.BuildID(ev.BuildID),
		logfields.Count(len(ev.Files)))
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
