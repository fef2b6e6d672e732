package modelcheck

import (
	"context"
	"fmt"
)

// Custom delegates entirely to Options.With. The validator's return value is
// the result: an empty message passes, a non-empty message is the failure
// message verbatim, and an error aborts the whole validation call. This is
// the only constraint allowed to block on the context.
func Custom(ctx context.Context, m Model, field string, value any, opts Options) (string, error) {
	if opts.With == nil {
		return "", fmt.Errorf("%w: custom constraint on field %q requires With", ErrMissingOption, field)
	}
	return opts.With.Validate(ctx, m, field, value, opts)
}
