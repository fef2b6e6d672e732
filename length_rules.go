package modelcheck

import (
	"fmt"
	"reflect"
)

// Length validates that the value's length lies within the inclusive
// [Min, Max] interval. Either bound may be nil (unconstrained on that side);
// with both nil every measurable value passes. An unset value measures as
// empty, so it fails a minimum bound like any short value does; a value
// without a length measure (e.g. a plain number) is a configuration error,
// never a failing message.
func Length(m Model, field string, value any, opts Options) (string, error) {
	n, err := lengthOf(field, value)
	if err != nil {
		return "", err
	}

	switch {
	case opts.Min != nil && opts.Max != nil:
		if n < *opts.Min || n > *opts.Max {
			msg := fmt.Sprintf("must have a length between %d and %d", *opts.Min, *opts.Max)
			return resolveMessage(m, field, value, "length.interval", msg, opts), nil
		}
	case opts.Min != nil:
		if n < *opts.Min {
			msg := fmt.Sprintf("must have a length of at least %d", *opts.Min)
			return resolveMessage(m, field, value, "length.minimum", msg, opts), nil
		}
	case opts.Max != nil:
		if n > *opts.Max {
			msg := fmt.Sprintf("must have a length of at most %d", *opts.Max)
			return resolveMessage(m, field, value, "length.maximum", msg, opts), nil
		}
	}

	return "", nil
}

func lengthOf(field string, value any) (int, error) {
	if value == nil {
		return 0, nil
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	}
	return 0, fmt.Errorf("%w: length constraint on field %q: %T has no length measure", ErrInvalidValue, field, value)
}
