package apperr

import (
	"errors"
	"fmt"
)

// Fold error kinds. Every per-fold failure wraps exactly one of these.
var (
	ErrNotFound  = errors.New("artifact not found")
	ErrEmpty     = errors.New("no data")
	ErrMalformed = errors.New("malformed data")
)

// ConfigError is a fatal misconfiguration: unsupported method, unknown evaluator,
// dataset without properties. It aborts the whole run.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// IsFatal reports whether err carries a ConfigError anywhere in its chain.
func IsFatal(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// FoldError is a recoverable failure scoped to one fold directory.
type FoldError struct {
	Path string
	Err  error
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("%s: [%s] %v", e.Path, Kind(e.Err), e.Err)
}

func (e *FoldError) Unwrap() error {
	return e.Err
}

func NewFold(path string, err error) *FoldError {
	return &FoldError{Path: path, Err: err}
}

// Kind names the failure class of err the way the study scripts always printed it.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "FileNotFoundError"
	case errors.Is(err, ErrEmpty):
		return "EmptyDataError"
	case errors.Is(err, ErrMalformed):
		return "MalformedDataError"
	default:
		return "Error"
	}
}

// NotFound wraps err (typically an fs.ErrNotExist) so that it matches ErrNotFound.
func NotFound(err error) error {
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}

func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

func Empty(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEmpty, fmt.Sprintf(format, args...))
}

// ValidationError rejects a malformed API request.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
