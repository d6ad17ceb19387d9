package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFile       = "file"
	KeySource     = "source"
	KeyDest       = "dest"
	KeyCount      = "count"
	KeyBytes      = "bytes"
	KeyBuildID    = "build_id"
	KeyEvent      = "event"
	KeyHook       = "hook"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func File(name string) slog.Attr     { return slog.String(KeyFile, name) }
func Source(path string) slog.Attr   { return slog.String(KeySource, path) }
func Dest(path string) slog.Attr     { return slog.String(KeyDest, path) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Bytes(n int64) slog.Attr        { return slog.Int64(KeyBytes, n) }
func BuildID(id string) slog.Attr    { return slog.String(KeyBuildID, id) }
func Event(name string) slog.Attr    { return slog.String(KeyEvent, name) }
func Hook(name string) slog.Attr     { return slog.String(KeyHook, name) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
