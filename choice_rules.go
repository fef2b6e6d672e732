package modelcheck

import (
	"fmt"
	"reflect"
)

// Confirmation validates that the value strictly equals the value of the
// sibling field named by Options.On. Equality is by identity, no coercion:
// "123" does not match 123.
func Confirmation(m Model, field string, value any, opts Options) (string, error) {
	if opts.On == "" {
		return "", fmt.Errorf("%w: confirmation constraint on field %q requires On", ErrMissingOption, field)
	}
	if strictEqual(value, m[opts.On]) {
		return "", nil
	}
	return resolveMessage(m, field, value, "confirmation", fmt.Sprintf("must match %s", opts.On), opts), nil
}

// Inclusion validates that Options.In contains the value under strict
// equality.
func Inclusion(m Model, field string, value any, opts Options) (string, error) {
	if opts.In == nil {
		return "", fmt.Errorf("%w: inclusion constraint on field %q requires In", ErrMissingOption, field)
	}
	if containsStrict(opts.In, value) {
		return "", nil
	}
	return resolveMessage(m, field, value, "inclusion", fmt.Sprintf("must be one of: %v", opts.In), opts), nil
}

// Exclusion validates that Options.From does not contain the value under
// strict equality. Exclusion and Inclusion are exact complements over the
// same set.
func Exclusion(m Model, field string, value any, opts Options) (string, error) {
	if opts.From == nil {
		return "", fmt.Errorf("%w: exclusion constraint on field %q requires From", ErrMissingOption, field)
	}
	if !containsStrict(opts.From, value) {
		return "", nil
	}
	return resolveMessage(m, field, value, "exclusion", fmt.Sprintf("must not be one of: %v", opts.From), opts), nil
}

func containsStrict(set []any, value any) bool {
	for _, item := range set {
		if strictEqual(item, value) {
			return true
		}
	}
	return false
}

// strictEqual compares two values by identity. Values of uncomparable
// dynamic types never match anything.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
