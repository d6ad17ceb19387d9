package config

import (
	"log/slog"
	"strings"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// NormalizeLogLevel case-folds raw; empty input maps to info and unknown
// values are kept so Validate can report them.
func NormalizeLogLevel(raw string) LogLevel {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "":
		return LogLevelInfo
	case "warning":
		return LogLevelWarn
	default:
		return LogLevel(v)
	}
}

// Valid reports whether l is a known level.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// SlogLevel maps the level onto slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

func NormalizeLogFormat(raw string) LogFormat {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return LogFormatText
	}
	return LogFormat(v)
}

// Valid reports whether f is a known format.
func (f LogFormat) Valid() bool {
	return f == LogFormatJSON || f == LogFormatText
}
