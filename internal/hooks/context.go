package hooks

import (
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docfeatures/internal/config"
	"git.home.luguber.info/inful/docfeatures/internal/logfields"
)

// Context carries the build tool's invocation data to hooks. Each dispatch
// gets its own Context; hooks must not retain it.
type Context struct {
	// BuildID uniquely identifies this invocation.
	BuildID string

	// DocsDir is the documentation source root.
	DocsDir string

	// SiteDir is the generated site output root.
	SiteDir string

	// Logger is pre-populated with the build ID.
	Logger *slog.Logger

	// Config is the loaded configuration (may be nil for direct calls).
	Config *config.Config

	// Data lets hooks hand results to later hooks and to the caller.
	Data map[string]any
}

// NewContext creates a hook context for the given roots with a fresh build ID.
func NewContext(cfg *config.Config, docsDir, siteDir string, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Context{
		BuildID: id,
		DocsDir: docsDir,
		SiteDir: siteDir,
		Logger:  logger.With(logfields.BuildID(id)),
		Config:  cfg,
		Data:    make(map[string]any),
	}
}

// SetValue stores a value in the Data map.
func (hc *Context) SetValue(key string, value any) {
	if hc.Data == nil {
		hc.Data = make(map[string]any)
	}
	hc.Data[key] = value
}

// GetValue retrieves a value from the Data map, or nil.
func (hc *Context) GetValue(key string) any {
	return hc.Data[key]
}
