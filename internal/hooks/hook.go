// Package hooks provides the named extension points through which a
// documentation build tool calls docfeatures. Hooks register under an Event
// name (e.g. "on_post_build") and are dispatched by name from the CLI.
package hooks

import (
	"context"
	"fmt"
	"strings"
)

// Event names a build lifecycle extension point.
type Event string

const (
	// EventPostBuild fires after the build tool has written all output files.
	EventPostBuild Event = "on_post_build"
)

var eventAliases = map[string]Event{
	"on_post_build": EventPostBuild,
	"post_build":    EventPostBuild,
	"post-build":    EventPostBuild,
}

// ParseEvent resolves raw (case-insensitive, aliases allowed) to a known Event.
func ParseEvent(raw string) (Event, bool) {
	ev, ok := eventAliases[strings.ToLower(strings.TrimSpace(raw))]
	return ev, ok
}

// String returns the canonical event name.
func (e Event) String() string { return string(e) }

// Hook is a callback bound to one or more events.
type Hook interface {
	// Metadata returns the hook's identity and the events it handles.
	Metadata() Metadata

	// Validate checks that the hook can run with the given context.
	Validate(hc *Context) error

	// Run executes the hook. There is no return value beyond the error.
	Run(ctx context.Context, hc *Context) error
}

// Metadata describes a hook.
type Metadata struct {
	Name        string
	Version     string
	Description string
	Events      []Event
}

// String returns a human-readable representation of the metadata.
func (m Metadata) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}

// Handles reports whether the hook is bound to ev.
func (m Metadata) Handles(ev Event) bool {
	want, ok := ParseEvent(string(ev))
	if !ok {
		return false
	}
	for _, e := range m.Events {
		if got, ok := ParseEvent(string(e)); ok && got == want {
			return true
		}
	}
	return false
}

// Validate checks if the metadata is valid.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("hook name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("hook version is required")
	}
	if len(m.Events) == 0 {
		return fmt.Errorf("hook %s binds no events", m.Name)
	}
	for _, e := range m.Events {
		if _, ok := ParseEvent(string(e)); !ok {
			return fmt.Errorf("hook %s binds unknown event %q", m.Name, e)
		}
	}
	return nil
}

// HookError represents an error that occurred within a hook.
type HookError struct {
	HookName string
	Event    Event
	Err      error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	return fmt.Sprintf("hook %s failed during %s: %v", e.HookName, e.Event, e.Err)
}

// Unwrap returns the underlying error for error inspection.
func (e *HookError) Unwrap() error {
	return e.Err
}
