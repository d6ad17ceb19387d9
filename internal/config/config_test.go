package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "docfeatures.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "docs_dir: documentation\n"+
		"site_dir: /abs/public\n"+
		"logging:\n"+
		"  level: DEBUG\n"+
		"  format: json\n"+
		"metrics:\n"+
		"  textfile: metrics/docfeatures.prom\n"+
		"events:\n"+
		"  nats_url: nats://localhost:4222\n"+
		"watch:\n"+
		"  debounce: 250ms\n"+
		"  resync: 1m\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if want := filepath.Join(dir, "documentation"); cfg.DocsDir != want {
		t.Errorf("DocsDir = %q, want %q", cfg.DocsDir, want)
	}
	if cfg.SiteDir != "/abs/public" {
		t.Errorf("SiteDir = %q, want /abs/public", cfg.SiteDir)
	}
	if cfg.Logging.Level != LogLevelDebug {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != LogFormatJSON {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if want := filepath.Join(dir, "metrics", "docfeatures.prom"); cfg.Metrics.Textfile != want {
		t.Errorf("Metrics.Textfile = %q, want %q", cfg.Metrics.Textfile, want)
	}
	if !cfg.Events.Enabled() || cfg.Events.Subject != DefaultEventSubject {
		t.Errorf("Events = %+v", cfg.Events)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond || cfg.Watch.Resync != time.Minute {
		t.Errorf("Watch = %+v", cfg.Watch)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadDefaultsRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "{}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if want := filepath.Join(dir, "docs"); cfg.DocsDir != want {
		t.Errorf("DocsDir = %q, want %q", cfg.DocsDir, want)
	}
	if want := filepath.Join(dir, "site"); cfg.SiteDir != want {
		t.Errorf("SiteDir = %q, want %q", cfg.SiteDir, want)
	}
	if cfg.Logging.Level != LogLevelInfo || cfg.Logging.Format != LogFormatText {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Watch.Debounce != DefaultDebounce {
		t.Errorf("Watch.Debounce = %v", cfg.Watch.Debounce)
	}
	if cfg.Events.Enabled() {
		t.Error("events should be disabled by default")
	}
}

func TestLoadMkDocsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mkdocs.yml")
	content := "site_name: Example\n" +
		"docs_dir: src\n" +
		"theme:\n" +
		"  name: material\n" +
		"hooks:\n" +
		"  - docs_hooks.py\n" +
		"watch:\n" +
		"  - overrides\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if want := filepath.Join(dir, "src"); cfg.DocsDir != want {
		t.Errorf("DocsDir = %q, want %q", cfg.DocsDir, want)
	}
	if want := filepath.Join(dir, "site"); cfg.SiteDir != want {
		t.Errorf("SiteDir = %q, want %q", cfg.SiteDir, want)
	}
	if cfg.Watch.Debounce != DefaultDebounce || cfg.Watch.Resync != 0 {
		t.Errorf("Watch = %+v, want defaults", cfg.Watch)
	}
}

func TestLoadEnvExpansionAndOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FEATURE_ROOT", "/srv/docs")
	t.Setenv(EnvSiteDir, "/srv/out")
	t.Setenv(EnvLogLevel, "warning")
	path := writeConfig(t, dir, "docs_dir: ${FEATURE_ROOT}\nsite_dir: ignored\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DocsDir != "/srv/docs" {
		t.Errorf("DocsDir = %q, want /srv/docs", cfg.DocsDir)
	}
	if cfg.SiteDir != "/srv/out" {
		t.Errorf("SiteDir = %q, want env override /srv/out", cfg.SiteDir)
	}
	if cfg.Logging.Level != LogLevelWarn {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.IsCategory(err, errors.CategoryConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		category errors.ErrorCategory
	}{
		{"bad yaml", "docs_dir: [unterminated\n", errors.CategoryConfig},
		{"bad level", "logging:\n  level: loud\n", errors.CategoryValidation},
		{"bad format", "logging:\n  format: xml\n", errors.CategoryValidation},
		{"negative resync", "watch:\n  resync: -1s\n", errors.CategoryValidation},
		{"site is docs", "docs_dir: out\nsite_dir: ./out\n", errors.CategoryValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if !errors.IsCategory(err, tt.category) {
				t.Fatalf("Load() error = %v, want category %s", err, tt.category)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if cfg.DocsDir != DefaultDocsDir || cfg.SiteDir != DefaultSiteDir || cfg.Path() != "" {
		t.Errorf("defaults = %+v", cfg)
	}

	writeConfig(t, dir, "docs_dir: content\n")
	cfg, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if cfg.DocsDir != "content" || cfg.Path() != DefaultFileName {
		t.Errorf("Resolve picked up %+v", cfg)
	}

	if _, err := Resolve("explicit-missing.yaml"); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "docfeatures.yaml")

	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := Init(path, false); err == nil {
		t.Fatal("Init() should refuse to overwrite without force")
	}
	if err := Init(path, true); err != nil {
		t.Fatalf("Init(force) error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(init output) error: %v", err)
	}
	if want := filepath.Join(filepath.Dir(path), "docs"); cfg.DocsDir != want {
		t.Errorf("DocsDir = %q, want %q", cfg.DocsDir, want)
	}
	if cfg.Watch.Debounce != DefaultDebounce {
		t.Errorf("Watch.Debounce = %v", cfg.Watch.Debounce)
	}
}

func TestLogLevelSlog(t *testing.T) {
	if NormalizeLogLevel(" Error ").SlogLevel().String() != "ERROR" {
		t.Error("error level should map to slog ERROR")
	}
	if NormalizeLogLevel("").SlogLevel().String() != "INFO" {
		t.Error("empty level should map to INFO")
	}
}
