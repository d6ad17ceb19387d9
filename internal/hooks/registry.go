package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
	"git.home.luguber.info/inful/docfeatures/internal/logfields"
)

// Registry manages hook registration and dispatch. Hooks run in registration order.
type Registry struct {
	mu    sync.RWMutex
	hooks []Hook
	names map[string]struct{}
}

// NewRegistry creates a new empty hook registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds a hook to the registry.
// Returns an error if a hook with the same name already exists.
func (r *Registry) Register(h Hook) error {
	if h == nil {
		return fmt.Errorf("cannot register nil hook")
	}

	md := h.Metadata()
	if err := md.Validate(); err != nil {
		return fmt.Errorf("invalid hook metadata: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[md.Name]; exists {
		return fmt.Errorf("hook %s already registered", md.Name)
	}
	r.names[md.Name] = struct{}{}
	r.hooks = append(r.hooks, h)
	return nil
}

// Get retrieves a hook by name.
func (r *Registry) Get(name string) (Hook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hooks {
		if h.Metadata().Name == name {
			return h, nil
		}
	}
	return nil, fmt.Errorf("hook %s not found", name)
}

// List returns all registered hooks in registration order.
func (r *Registry) List() []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Hook, len(r.hooks))
	copy(out, r.hooks)
	return out
}

// ForEvent returns the hooks bound to ev in registration order.
func (r *Registry) ForEvent(ev Event) []Hook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Hook
	for _, h := range r.hooks {
		if h.Metadata().Handles(ev) {
			out = append(out, h)
		}
	}
	return out
}

// Unregister removes a hook from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.hooks {
		if h.Metadata().Name == name {
			r.hooks = append(r.hooks[:i], r.hooks[i+1:]...)
			delete(r.names, name)
			return nil
		}
	}
	return fmt.Errorf("hook %s not found", name)
}

// Count returns the number of registered hooks.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}

// Dispatch runs every hook bound to ev, stopping at the first failure.
// Dispatching an event with no bound hooks is a no-op.
func (r *Registry) Dispatch(ctx context.Context, ev Event, hc *Context) error {
	canonical, ok := ParseEvent(string(ev))
	if !ok {
		return errors.UnknownEvent(string(ev))
	}
	ev = canonical
	if hc == nil {
		return errors.InternalError("dispatch without hook context", nil)
	}
	if hc.Logger == nil {
		hc.Logger = slog.Default()
	}

	for _, h := range r.ForEvent(ev) {
		md := h.Metadata()
		logger := hc.Logger.With(logfields.Hook(md.Name), logfields.Event(ev.String()))

		if err := h.Validate(hc); err != nil {
			return errors.HookFailed(md.Name, ev.String(), &HookError{HookName: md.Name, Event: ev, Err: err})
		}

		start := time.Now()
		logger.Debug("Running hook")
		if err := h.Run(ctx, hc); err != nil {
			logger.Debug("Hook failed", logfields.Error(err))
			return errors.HookFailed(md.Name, ev.String(), &HookError{HookName: md.Name, Event: ev, Err: err})
		}
		logger.Debug("Hook finished", logfields.Duration(time.Since(start)))
	}
	return nil
}

// defaultRegistry is the registry used by the CLI.
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry with the built-in hooks registered.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterDefaults(defaultRegistry, nil)
	})
	return defaultRegistry
}

// RegisterDefaults registers the built-in hooks on r.
func RegisterDefaults(r *Registry, opts *FeatureCopyOptions) {
	// Registration of a fresh built-in hook can only fail on duplicate names.
	_ = r.Register(NewFeatureCopyHook(opts))
}
