package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if dfe, ok := As(err); ok {
		return exitCodeFromCategory(dfe.Category)
	}

	return 1
}

func exitCodeFromCategory(category ErrorCategory) int {
	switch category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7
	case CategoryEvents:
		return 8 // External system error
	case CategoryFileSystem, CategoryHook:
		return 11
	case CategoryRuntime:
		return 12
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if dfe, ok := As(err); ok {
		if a.verbose {
			return dfe.Error()
		}
		switch dfe.Category {
		case CategoryConfig, CategoryValidation:
			return dfe.Message
		default:
			if dfe.Cause != nil {
				return fmt.Sprintf("%s: %s: %v", dfe.Category, dfe.Message, dfe.Cause)
			}
			return fmt.Sprintf("%s: %s", dfe.Category, dfe.Message)
		}
	}

	return fmt.Sprintf("Error: %v", err)
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if dfe, ok := As(err); ok {
		return dfe.Category == CategoryInternal ||
			dfe.Category == CategoryRuntime ||
			dfe.Severity == SeverityFatal
	}

	return true
}

func (a *CLIErrorAdapter) logError(err error) {
	if dfe, ok := As(err); ok {
		attrs := []slog.Attr{slog.String("category", string(dfe.Category))}
		for k, v := range dfe.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
		if dfe.Cause != nil {
			attrs = append(attrs, slog.String("error", dfe.Cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), slogLevel(dfe.Severity), dfe.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

func slogLevel(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
