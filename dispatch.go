package modelcheck

import (
	"context"
	"fmt"
)

// dispatch evaluates one constraint against one field. It reads the value,
// consults the conditional If predicate, verifies required options, and
// routes to the validator via an exhaustive switch over the closed
// constraint set. Unknown names are fatal to the whole call.
func dispatch(ctx context.Context, m Model, field string, check Check) (string, error) {
	opts := check.Options
	value := m[field]

	if opts.If != nil {
		run, err := opts.If.ShouldValidate(ctx, value, m, field)
		if err != nil {
			return "", err
		}
		if !run {
			return "", nil
		}
	}

	if err := requireOptions(field, check); err != nil {
		return "", err
	}

	switch check.Name {
	case ConstraintPresence:
		return Presence(m, field, value, opts)
	case ConstraintAbsence:
		return Absence(m, field, value, opts)
	case ConstraintType:
		return TypeOf(m, field, value, opts)
	case ConstraintInstance:
		return InstanceOf(m, field, value, opts)
	case ConstraintLength:
		return Length(m, field, value, opts)
	case ConstraintEmail:
		return Email(m, field, value, opts)
	case ConstraintFormat:
		return Format(m, field, value, opts)
	case ConstraintConfirmation:
		return Confirmation(m, field, value, opts)
	case ConstraintInclusion:
		return Inclusion(m, field, value, opts)
	case ConstraintExclusion:
		return Exclusion(m, field, value, opts)
	case ConstraintUUID:
		return UUID(m, field, value, opts)
	case ConstraintCustom:
		return Custom(ctx, m, field, value, opts)
	}
	return "", fmt.Errorf("%w: %q on field %q", ErrUnknownConstraint, check.Name, field)
}

// requireOptions checks constraint-specific required options at the dispatch
// boundary, before the validator runs. The validators repeat these checks so
// that direct use of an exported validator carries the same guarantees.
func requireOptions(field string, check Check) error {
	opts := check.Options
	switch check.Name {
	case ConstraintType:
		if !validTypeTag(opts.Type) {
			return fmt.Errorf("%w: type constraint on field %q: %q is not a canonical type tag", ErrMissingOption, field, opts.Type)
		}
	case ConstraintInstance:
		if instanceType(opts.Instance) == nil {
			return fmt.Errorf("%w: instance constraint on field %q requires Instance", ErrMissingOption, field)
		}
	case ConstraintFormat:
		if opts.Pattern == nil {
			return fmt.Errorf("%w: format constraint on field %q requires Pattern", ErrMissingOption, field)
		}
	case ConstraintConfirmation:
		if opts.On == "" {
			return fmt.Errorf("%w: confirmation constraint on field %q requires On", ErrMissingOption, field)
		}
	case ConstraintInclusion:
		if opts.In == nil {
			return fmt.Errorf("%w: inclusion constraint on field %q requires In", ErrMissingOption, field)
		}
	case ConstraintExclusion:
		if opts.From == nil {
			return fmt.Errorf("%w: exclusion constraint on field %q requires From", ErrMissingOption, field)
		}
	case ConstraintCustom:
		if opts.With == nil {
			return fmt.Errorf("%w: custom constraint on field %q requires With", ErrMissingOption, field)
		}
	}
	return nil
}
