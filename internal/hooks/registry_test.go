package hooks

import (
	"context"
	stdErrors "errors"
	"io"
	"log/slog"
	"testing"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
)

// mockHook records invocations into a shared slice.
type mockHook struct {
	metadata    Metadata
	calls       *[]string
	runErr      error
	validateErr error
}

func (m *mockHook) Metadata() Metadata { return m.metadata }

func (m *mockHook) Validate(*Context) error { return m.validateErr }

func (m *mockHook) Run(context.Context, *Context) error {
	if m.calls != nil {
		*m.calls = append(*m.calls, m.metadata.Name)
	}
	return m.runErr
}

func newMockHook(name string, calls *[]string) *mockHook {
	return &mockHook{
		metadata: Metadata{Name: name, Version: "v1.0.0", Events: []Event{EventPostBuild}},
		calls:    calls,
	}
}

func testContext() *Context {
	return NewContext(nil, "docs", "site", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TestRegistryRegister tests hook registration.
func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()
	hook := newMockHook("test-hook", nil)

	if err := registry.Register(hook); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
	if err := registry.Register(hook); err == nil {
		t.Error("Should not allow duplicate registration")
	}
}

func TestRegistryRegisterInvalid(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Error("Should not allow registering nil hook")
	}

	cases := []Metadata{
		{Version: "v1", Events: []Event{EventPostBuild}},
		{Name: "x", Events: []Event{EventPostBuild}},
		{Name: "x", Version: "v1"},
		{Name: "x", Version: "v1", Events: []Event{"on_pre_build"}},
	}
	for _, md := range cases {
		if err := registry.Register(&mockHook{metadata: md}); err == nil {
			t.Errorf("Register(%+v) should fail", md)
		}
	}
}

func TestRegistryGetAndUnregister(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(newMockHook("a", nil))
	_ = registry.Register(newMockHook("b", nil))

	if _, err := registry.Get("a"); err != nil {
		t.Errorf("Get(a) error: %v", err)
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}
	if err := registry.Unregister("a"); err != nil {
		t.Fatalf("Unregister(a) error: %v", err)
	}
	if err := registry.Unregister("a"); err == nil {
		t.Error("second Unregister(a) should fail")
	}
	if got := len(registry.List()); got != 1 {
		t.Errorf("List() len = %d, want 1", got)
	}
	// Name is free again.
	if err := registry.Register(newMockHook("a", nil)); err != nil {
		t.Errorf("re-register after unregister: %v", err)
	}
}

func TestDispatchOrder(t *testing.T) {
	var calls []string
	registry := NewRegistry()
	for _, name := range []string{"first", "second", "third"} {
		if err := registry.Register(newMockHook(name, &calls)); err != nil {
			t.Fatal(err)
		}
	}

	if err := registry.Dispatch(context.Background(), EventPostBuild, testContext()); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestDispatchEventAlias(t *testing.T) {
	tests := []Event{"post_build", "Post-Build", " on_post_build "}
	for _, ev := range tests {
		t.Run(string(ev), func(t *testing.T) {
			var calls []string
			registry := NewRegistry()
			if err := registry.Register(newMockHook("features", &calls)); err != nil {
				t.Fatal(err)
			}
			if err := registry.Dispatch(context.Background(), ev, testContext()); err != nil {
				t.Fatalf("Dispatch(%q) error: %v", ev, err)
			}
			if len(calls) != 1 {
				t.Errorf("Dispatch(%q) ran %v, want [features]", ev, calls)
			}
		})
	}
}

func TestDispatchStopsAtFirstError(t *testing.T) {
	var calls []string
	boom := stdErrors.New("boom")
	registry := NewRegistry()
	_ = registry.Register(newMockHook("ok", &calls))
	failing := newMockHook("failing", &calls)
	failing.runErr = boom
	_ = registry.Register(failing)
	_ = registry.Register(newMockHook("never", &calls))

	err := registry.Dispatch(context.Background(), EventPostBuild, testContext())
	if err == nil {
		t.Fatal("Dispatch() should fail")
	}
	if !stdErrors.Is(err, boom) {
		t.Errorf("error chain should contain cause, got %v", err)
	}
	var hookErr *HookError
	if !stdErrors.As(err, &hookErr) || hookErr.HookName != "failing" {
		t.Errorf("expected HookError for failing, got %v", err)
	}
	if !errors.IsCategory(err, errors.CategoryHook) {
		t.Errorf("expected hook category, got %v", errors.GetCategory(err))
	}
	if len(calls) != 2 {
		t.Errorf("calls = %v, want [ok failing]", calls)
	}
}

func TestDispatchValidateFailure(t *testing.T) {
	var calls []string
	registry := NewRegistry()
	h := newMockHook("invalid", &calls)
	h.validateErr = stdErrors.New("bad input")
	_ = registry.Register(h)

	if err := registry.Dispatch(context.Background(), EventPostBuild, testContext()); err == nil {
		t.Fatal("Dispatch() should fail validation")
	}
	if len(calls) != 0 {
		t.Errorf("Run must not be called after failed validation, calls = %v", calls)
	}
}

func TestDispatchUnknownEvent(t *testing.T) {
	err := NewRegistry().Dispatch(context.Background(), Event("on_config"), testContext())
	if !errors.IsCategory(err, errors.CategoryValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDispatchNoHooks(t *testing.T) {
	if err := NewRegistry().Dispatch(context.Background(), EventPostBuild, testContext()); err != nil {
		t.Errorf("Dispatch() with no hooks should succeed, got %v", err)
	}
}

func TestParseEvent(t *testing.T) {
	for _, raw := range []string{"on_post_build", "POST_BUILD", " post-build "} {
		if ev, ok := ParseEvent(raw); !ok || ev != EventPostBuild {
			t.Errorf("ParseEvent(%q) = %v, %v", raw, ev, ok)
		}
	}
	if _, ok := ParseEvent("on_page_markdown"); ok {
		t.Error("unknown events must not parse")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	if r != DefaultRegistry() {
		t.Error("DefaultRegistry should be a singleton")
	}
	hooks := r.ForEvent(EventPostBuild)
	if len(hooks) != 1 || hooks[0].Metadata().Name != FeatureCopyHookName {
		t.Errorf("default post-build hooks = %v", hooks)
	}
}

func TestNewContext(t *testing.T) {
	a := NewContext(nil, "d", "s", nil)
	b := NewContext(nil, "d", "s", nil)
	if a.BuildID == "" || a.BuildID == b.BuildID {
		t.Errorf("build IDs should be unique and non-empty: %q %q", a.BuildID, b.BuildID)
	}
	if a.Logger == nil || a.Data == nil {
		t.Error("context should carry a logger and data map")
	}
}
