package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeFileOpen  = "FILE_OPEN"
	ErrCodeFileRead  = "FILE_READ"
	ErrCodeCancelled = "CANCELLED"
	ErrCodeConfig    = "CONFIG"
)

// AppError is a non-fatal application error shown to the user
type AppError struct {
	Code    string // Error code (e.g., "FILE_READ")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Title is a short dialog title for the error code
func (e *AppError) Title() string {
	switch e.Code {
	case ErrCodeFileOpen:
		return "Open Failed"
	case ErrCodeFileRead:
		return "File Load Error"
	case ErrCodeCancelled:
		return "Load Cancelled"
	case ErrCodeConfig:
		return "Configuration Error"
	default:
		return "Error"
	}
}

// NewFileOpenError creates a FILE_OPEN error
func NewFileOpenError(name string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeFileOpen,
		Message: fmt.Sprintf("could not open %s", name),
		Err:     err,
	}
}

// NewFileReadError creates a FILE_READ error
func NewFileReadError(name string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeFileRead,
		Message: fmt.Sprintf("could not read %s", name),
		Err:     err,
	}
}

// NewCancelledError creates a CANCELLED error
func NewCancelledError(name string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeCancelled,
		Message: fmt.Sprintf("loading %s was cancelled", name),
		Err:     err,
	}
}

// NewConfigError creates a CONFIG error
func NewConfigError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeConfig,
		Message: "invalid configuration",
		Err:     err,
	}
}

// HasCode reports whether err wraps an AppError with the given code
func HasCode(err error, code string) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == code
}

// Title returns the dialog title for err, defaulting to "Error"
func Title(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Title()
	}
	return "Error"
}
