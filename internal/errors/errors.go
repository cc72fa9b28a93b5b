package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/smartpack/internal/logger"
)

// ErrStorageUnavailable is returned when no persistent store is usable in
// this environment.
var ErrStorageUnavailable = stderrors.New("storage unavailable")

// ValidationError reports bad user input such as an empty or oversized name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation on a module or trip key that doesn't exist.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// IndexError reports an item or snapshot index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

// ImportError reports a malformed or structurally invalid import document.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid import file: %s: %v", e.Reason, e.Err)
	}
	return "invalid import file: " + e.Reason
}

func (e *ImportError) Unwrap() error { return e.Err }

// ExportError wraps any failure while serializing or writing an export.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export data: %v", e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// NewValidation is shorthand for a ValidationError.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewNotFound is shorthand for a NotFoundError.
func NewNotFound(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// NewIndex is shorthand for an IndexError.
func NewIndex(index, length int) error {
	return &IndexError{Index: index, Len: length}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return stderrors.As(err, &v)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var v *NotFoundError
	return stderrors.As(err, &v)
}

// IsIndex reports whether err is (or wraps) an IndexError.
func IsIndex(err error) bool {
	var v *IndexError
	return stderrors.As(err, &v)
}

// IsImport reports whether err is (or wraps) an ImportError.
func IsImport(err error) bool {
	var v *ImportError
	return stderrors.As(err, &v)
}

// IsExport reports whether err is (or wraps) an ExportError.
func IsExport(err error) bool {
	var v *ExportError
	return stderrors.As(err, &v)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
