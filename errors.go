package modelcheck

import "errors"

// Configuration errors signal API misuse and abort the whole validation call.
// They are never added to a field's message list and never caught internally.
var (
	// ErrUnknownConstraint is returned when a constraint name is not part of
	// the closed constraint set.
	ErrUnknownConstraint = errors.New("unknown constraint")

	// ErrMissingOption is returned when a constraint's required option is
	// absent or has the wrong shape.
	ErrMissingOption = errors.New("constraint option missing or malformed")

	// ErrInvalidValue is returned when a value's runtime shape is
	// incompatible with a constraint's precondition, e.g. length on a value
	// without a length measure.
	ErrInvalidValue = errors.New("value incompatible with constraint")
)
