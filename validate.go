package modelcheck

import (
	"context"
	"io"
	"log/slog"
)

// HaltPolicy governs early termination of constraint and field iteration.
type HaltPolicy string

const (
	// HaltNever evaluates every constraint of every field.
	HaltNever HaltPolicy = "never"

	// HaltFirstError stops a field at its first failing constraint; at the
	// model level it also stops the field loop at the first field with any
	// error.
	HaltFirstError HaltPolicy = "first-error"

	// HaltFirstFieldError visits every field but stops each one at its first
	// failing constraint.
	HaltFirstFieldError HaltPolicy = "first-field-error"
)

// Option configures a single Validate or ValidateField call.
type Option func(*callConfig)

type callConfig struct {
	halt   HaltPolicy
	logger *slog.Logger
}

// WithHaltPolicy sets the halt policy for the call. The default is HaltNever.
func WithHaltPolicy(p HaltPolicy) Option {
	return func(c *callConfig) {
		c.halt = p
	}
}

// WithLogger attaches a logger that records failing constraints at debug
// level. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *callConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newCallConfig(opts []Option) callConfig {
	cfg := callConfig{
		halt:   HaltNever,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ValidateField runs a field's constraints in declaration order and returns
// the failing messages, also in declaration order. With HaltFirstError (or
// HaltFirstFieldError, which behaves identically at field scope) iteration
// stops after the first failing constraint; skipped constraints leave no
// trace. A configuration error aborts immediately with a nil result.
func ValidateField(ctx context.Context, m Model, field string, constraints FieldConstraints, opts ...Option) ([]string, error) {
	return validateField(ctx, m, field, constraints, newCallConfig(opts))
}

func validateField(ctx context.Context, m Model, field string, constraints FieldConstraints, cfg callConfig) ([]string, error) {
	var messages []string
	for _, check := range constraints {
		msg, err := dispatch(ctx, m, field, check)
		if err != nil {
			return nil, err
		}
		if msg == "" {
			continue
		}
		messages = append(messages, msg)
		cfg.logger.DebugContext(ctx, "constraint failed",
			"field", field, "constraint", string(check.Name), "message", msg)
		if cfg.halt != HaltNever {
			break
		}
	}
	return messages, nil
}

// Validate runs every field's constraints in declaration order and returns a
// map from field name to its failing messages; fields without errors are
// omitted. The model-level halt policy composes with the field-level one:
// any policy other than HaltNever stops each field at its first failing
// constraint, and HaltFirstError additionally stops the field loop at the
// first field that produced an error, leaving later fields unevaluated and
// absent from the result.
func Validate(ctx context.Context, m Model, constraints ModelConstraints, opts ...Option) (map[string][]string, error) {
	cfg := newCallConfig(opts)

	fieldCfg := cfg
	if cfg.halt != HaltNever {
		fieldCfg.halt = HaltFirstError
	}

	result := make(map[string][]string)
	for _, rules := range constraints {
		messages, err := validateField(ctx, m, rules.Field, rules.Constraints, fieldCfg)
		if err != nil {
			return nil, err
		}
		if len(messages) == 0 {
			continue
		}
		result[rules.Field] = messages
		if cfg.halt == HaltFirstError {
			break
		}
	}
	return result, nil
}
