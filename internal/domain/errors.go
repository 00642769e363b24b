package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidBinding        = errors.New("invalid binding")
	ErrUnsupportedCapability = errors.New("unsupported capability")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("not found")
	ErrInvalidConfig         = errors.New("invalid config")
	ErrExecution             = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidBinding        ErrorKind = "invalid_binding"
	KindUnsupportedCapability ErrorKind = "unsupported_capability"
	KindInvalidInput          ErrorKind = "invalid_input"
	KindNotFound              ErrorKind = "not_found"
	KindInvalidConfig         ErrorKind = "invalid_config"
	KindExecution             ErrorKind = "execution"
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

// InvalidBinding reports a dispatch or pipeline invoked without a usable
// collaborator. The returned error matches ErrInvalidBinding.
func InvalidBinding(op, detail string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidBinding,
		Err:  fmt.Errorf("%w: %s", ErrInvalidBinding, detail),
	}
}

// UnsupportedCapability reports that a bound variant does not satisfy the
// named optional capability. The returned error matches ErrUnsupportedCapability.
func UnsupportedCapability(op, capability string, variant any) error {
	return &OpError{
		Op:   op,
		Kind: KindUnsupportedCapability,
		Err:  fmt.Errorf("%w: %T does not implement %s", ErrUnsupportedCapability, variant, capability),
	}
}
