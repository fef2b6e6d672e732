package modelcheck

import (
	"context"
	"regexp"
)

// TranslationHandler is the i18n capability consumed by the message resolver.
// The engine never constructs one; it is always supplied by the caller via
// Options.I18n. The i18n subpackage provides a catalog-backed implementation.
type TranslationHandler interface {
	// Exists reports whether a translation is registered for the key.
	Exists(key string) bool
	// Translate renders the translation for the key with the given params.
	Translate(key string, params map[string]any) string
}

// I18n configures the i18n lookup for one constraint. When Key is empty the
// resolver derives it as "validation." + the constraint's message key.
type I18n struct {
	Handler TranslationHandler
	Key     string
}

// Condition decides whether a constraint should run at all for this value.
// A false result skips the constraint (treated as a pass, nothing recorded);
// an error aborts the entire validation call.
type Condition interface {
	ShouldValidate(ctx context.Context, value any, m Model, field string) (bool, error)
}

// ConditionFunc adapts a plain function to the Condition interface.
type ConditionFunc func(ctx context.Context, value any, m Model, field string) (bool, error)

func (f ConditionFunc) ShouldValidate(ctx context.Context, value any, m Model, field string) (bool, error) {
	return f(ctx, value, m, field)
}

// CustomValidator is the user-supplied validator behind the custom
// constraint. Its return value is the result: an empty message is a pass, a
// non-empty message is the failure message verbatim (the resolution chain is
// not applied), and an error aborts the entire validation call.
type CustomValidator interface {
	Validate(ctx context.Context, m Model, field string, value any, opts Options) (string, error)
}

// CustomFunc adapts a plain function to the CustomValidator interface.
type CustomFunc func(ctx context.Context, m Model, field string, value any, opts Options) (string, error)

func (f CustomFunc) Validate(ctx context.Context, m Model, field string, value any, opts Options) (string, error) {
	return f(ctx, m, field, value, opts)
}

// Options configures a single constraint. Message, I18n, and If apply to
// every constraint; the remaining fields are constraint-specific and checked
// at the dispatch boundary. Options are never mutated by the engine.
type Options struct {
	// Message overrides the resolved message verbatim, bypassing i18n.
	Message string
	// I18n resolves the failure message through a translation handler.
	I18n *I18n
	// If makes the constraint conditional; see Condition.
	If Condition

	// Type is the expected runtime type tag (type constraint).
	Type TypeTag
	// Instance is a reflect.Type or an exemplar value whose type the field
	// value must be assignable to (instance constraint).
	Instance any
	// Min and Max are inclusive length bounds; nil means unconstrained on
	// that side (length constraint).
	Min *int
	Max *int
	// Pattern is the regular expression the value must match (format
	// constraint).
	Pattern *regexp.Regexp
	// On names the sibling field the value must equal (confirmation
	// constraint).
	On string
	// In is the allowed value set (inclusion constraint).
	In []any
	// From is the forbidden value set (exclusion constraint).
	From []any
	// With is the user-supplied validator (custom constraint).
	With CustomValidator

	// Meta holds extra values merged into i18n params so translations can
	// interpolate caller-defined placeholders.
	Meta map[string]any
}
