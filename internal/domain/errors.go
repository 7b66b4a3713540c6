package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidData       = errors.New("invalid data")
	ErrMarkerCount       = errors.New("unexpected number of table markers")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrExecution         = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidData   ErrorKind = "invalid_data"
	KindMarker        ErrorKind = "marker"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ExecError wraps err as a KindExecution failure carrying ErrExecution.
func ExecError(op, path string, err error) error {
	return &OpError{Op: op, Kind: KindExecution, Path: path, Err: fmt.Errorf("%w: %w", ErrExecution, err)}
}

// FileError classifies a failed open or read of path. Only a missing file is
// KindNotFound; permission problems, directories and the like are execution
// failures.
func FileError(op, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &OpError{Op: op, Kind: KindNotFound, Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
	}
	return ExecError(op, path, err)
}
