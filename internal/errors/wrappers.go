package errors

import "fmt"

// WrapWithOperation wraps an error with an operation context
func WrapWithOperation(operation, item string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s %s", operation, item)
	return Wrap(UnknownErrorCode, message, cause)
}

// WrapParseError wraps a source or document parse failure
func WrapParseError(item string, cause error) *BaseError {
	message := fmt.Sprintf("failed to parse %s", item)
	return Wrap(SyntaxErrorCode, message, cause).
		WithLocation(SourceLocation{File: item})
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapLoaderError wraps a failure raised while loading a controller type
func WrapLoaderError(identifier, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to load controller '%s'", identifier)
	return Wrap(LoaderErrorCode, message, cause).
		WithLocation(SourceLocation{File: path}).
		WithContext("controller", identifier)
}

// WrapRegisterError wraps an error raised while registering a controller
func WrapRegisterError(identifier string, cause error) *BaseError {
	message := fmt.Sprintf("failed to register controller '%s'", identifier)
	return Wrap(RegistrationErrorCode, message, cause).
		WithContext("controller", identifier)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// NewLintError creates a finding produced by the annotation linter
func NewLintError(loc SourceLocation, format string, args ...interface{}) *BaseError {
	return Newf(LintErrorCode, format, args...).WithLocation(loc)
}
