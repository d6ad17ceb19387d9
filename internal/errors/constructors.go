package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *DocFeaturesError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *DocFeaturesError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *DocFeaturesError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// File system errors

func FileSystemError(operation, path string, cause error) *DocFeaturesError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, operation+" failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Hook errors

func HookFailed(hook, event string, cause error) *DocFeaturesError {
	return Wrap(cause, CategoryHook, SeverityFatal, "hook failed").
		WithContext("hook", hook).
		WithContext("event", event)
}

func UnknownEvent(event string) *DocFeaturesError {
	return New(CategoryValidation, SeverityFatal, "unknown hook event").
		WithContext("event", event)
}

// Event publishing errors

func PublishFailed(subject string, cause error) *DocFeaturesError {
	return Wrap(cause, CategoryEvents, SeverityWarning, "event publish failed").
		WithContext("subject", subject)
}

// Runtime errors

func Canceled(cause error) *DocFeaturesError {
	return Wrap(cause, CategoryRuntime, SeverityError, "operation canceled")
}

func InternalError(message string, cause error) *DocFeaturesError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
