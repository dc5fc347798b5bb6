package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// Pipeline sentinel errors. Callers match these with errors.Is; the helper
// constructors below attach the offending file or label.
var (
	// ErrUnparsableFilename marks a source file whose name carries no
	// AfiliadosMuni-MM-YYYY date. The file is skipped, the run continues.
	ErrUnparsableFilename = errors.New("filename does not contain a MM-YYYY date")

	// ErrMissingInputDirectory is fatal: the configured source directory
	// does not exist.
	ErrMissingInputDirectory = errors.New("input directory does not exist")

	// ErrNoValidInput is fatal: every discovered file was skipped, or none
	// were found. No output files are written in this case.
	ErrNoValidInput = errors.New("no valid input files were processed")

	// ErrMalformedMunicipalityLabel aborts the run: a municipality label
	// without a leading numeric code means the canonical schema missed a
	// new file format upstream.
	ErrMalformedMunicipalityLabel = errors.New("municipality label has no leading numeric code")
)

// UnparsableFilename wraps ErrUnparsableFilename with the file name.
func UnparsableFilename(name string) error {
	return fmt.Errorf("%w: %s", ErrUnparsableFilename, name)
}

// MissingInputDirectory wraps ErrMissingInputDirectory with the path.
func MissingInputDirectory(dir string) error {
	return fmt.Errorf("%w: %s", ErrMissingInputDirectory, dir)
}

// MalformedMunicipalityLabel wraps ErrMalformedMunicipalityLabel with the label.
func MalformedMunicipalityLabel(label string) error {
	return fmt.Errorf("%w: %q", ErrMalformedMunicipalityLabel, label)
}
