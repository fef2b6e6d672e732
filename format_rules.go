package modelcheck

import "fmt"

// Email validates that a string value is a syntactically valid email
// address. Non-string values are a configuration error.
func Email(m Model, field string, value any, opts Options) (string, error) {
	s, err := stringValue("email", field, value)
	if err != nil {
		return "", err
	}
	if IsEmailValid(s) {
		return "", nil
	}
	return resolveMessage(m, field, value, "email", "must be a valid email address", opts), nil
}

// Format validates that a string value matches Options.Pattern.
func Format(m Model, field string, value any, opts Options) (string, error) {
	if opts.Pattern == nil {
		return "", fmt.Errorf("%w: format constraint on field %q requires Pattern", ErrMissingOption, field)
	}
	s, err := stringValue("format", field, value)
	if err != nil {
		return "", err
	}
	if opts.Pattern.MatchString(s) {
		return "", nil
	}
	return resolveMessage(m, field, value, "format", "has an invalid format", opts), nil
}

// UUID validates that a string value is a canonical UUID (versions 1-5,
// RFC 4122 variant), ignoring whitespace, hyphens, and periods.
func UUID(m Model, field string, value any, opts Options) (string, error) {
	s, err := stringValue("uuid", field, value)
	if err != nil {
		return "", err
	}
	if IsUUIDValid(s) {
		return "", nil
	}
	return resolveMessage(m, field, value, "uuid", "must be a valid UUID", opts), nil
}

func stringValue(constraint, field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s constraint on field %q requires a string value, got %T", ErrInvalidValue, constraint, field, value)
	}
	return s, nil
}
