// Package events publishes notifications after feature files have been copied,
// so that caches or front-end tooling can react to fresh feature data.
package events

import (
	"context"
	"sync"
	"time"
)

// FeaturesCopied is emitted after a successful copy run.
type FeaturesCopied struct {
	BuildID   string    `json:"build_id"`
	Source    string    `json:"source"`
	Dest      string    `json:"dest"`
	Files     []string  `json:"files"`
	Bytes     int64     `json:"bytes"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher delivers FeaturesCopied events.
type Publisher interface {
	Publish(ctx context.Context, ev FeaturesCopied) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, FeaturesCopied) error { return nil }
func (NoopPublisher) Close() error                                  { return nil }

// MemoryPublisher keeps events in memory; used by in-process subscribers and tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []FeaturesCopied
}

// NewMemoryPublisher creates an empty MemoryPublisher.
func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (m *MemoryPublisher) Publish(_ context.Context, ev FeaturesCopied) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *MemoryPublisher) Close() error { return nil }

// Events returns a copy of the recorded events.
func (m *MemoryPublisher) Events() []FeaturesCopied {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FeaturesCopied, len(m.events))
	copy(out, m.events)
	return out
}
