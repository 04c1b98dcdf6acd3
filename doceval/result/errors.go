package result

import "github.com/pkg/errors"

// Evaluation failures classify into exactly one of these kinds. Operators
// wrap them with context via pkg/errors, so callers classify with
// errors.Cause.
var (
	// ErrTypeMismatch: operand of the wrong value kind for the operator.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidArgument: right kind, semantically invalid content.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange: result falls outside the representable domain.
	ErrOutOfRange = errors.New("out of range")
	// ErrPathTraversal: field path navigates through a non-container value.
	ErrPathTraversal = errors.New("path traversal")
)

func TypeMismatch(format string, args ...any) error {
	return errors.Wrapf(ErrTypeMismatch, format, args...)
}

func InvalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func OutOfRange(format string, args ...any) error {
	return errors.Wrapf(ErrOutOfRange, format, args...)
}

func PathTraversal(format string, args ...any) error {
	return errors.Wrapf(ErrPathTraversal, format, args...)
}

// IsKind reports whether err was produced from the given sentinel.
func IsKind(err, kind error) bool {
	return errors.Cause(err) == kind
}
