package validate

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every error produced by the engines wraps exactly one of these.
var (
	ErrTypeKind  = errors.New("operand is not numeric")
	ErrDimension = errors.New("dimension mismatch")
	ErrDomain    = errors.New("argument outside function domain")
)

// Error provides detailed information about a rejected input.
type Error struct {
	Kind    error  // ErrTypeKind, ErrDimension or ErrDomain
	Op      string // Operation that rejected the input (e.g. "forward.New", "log")
	Details string // Human readable detail
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Details)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Details)
}

// Unwrap returns the error kind so errors.Is works against the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

func typeKind(op, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: ErrTypeKind, Op: op, Details: fmt.Sprintf(format, args...)})
}

// Dimension builds a dimension error for op.
func Dimension(op, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: ErrDimension, Op: op, Details: fmt.Sprintf(format, args...)})
}

// Domain builds a domain error for op.
func Domain(op, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: ErrDomain, Op: op, Details: fmt.Sprintf(format, args...)})
}
