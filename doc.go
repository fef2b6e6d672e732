// Package modelcheck provides declarative validation of map-backed models
// against an ordered set of named constraints, with pluggable i18n message
// resolution.
//
// A model is a plain map[string]any owned by the caller. Constraints are
// declared per field as an ordered list of (constraint, options) pairs and
// evaluated strictly in declaration order, which makes halting policies
// deterministic: HaltNever evaluates everything, HaltFirstError stops a field
// at its first failing constraint, and at the model level HaltFirstError
// additionally stops the field loop at the first field with any error.
//
// # Architecture
//
// Each source file groups one family of constraint validators
// (`presence_rules.go`, `length_rules.go`, `format_rules.go`, ...). Every
// validator is a pure function from (model, field, value, options) to either
// an empty string (pass) or a resolved error message (fail); validators never
// mutate the model and the package holds no global state, so it is completely
// goroutine-safe.
//
// Failing constraints resolve their message through a fixed precedence chain:
// an explicit Options.Message wins, then an i18n lookup through the caller's
// TranslationHandler, then the constraint's built-in default message.
//
// # Usage
//
//	errs, err := modelcheck.Validate(ctx, model, modelcheck.ModelConstraints{
//	    {Field: "email", Constraints: modelcheck.FieldConstraints{
//	        {Name: modelcheck.ConstraintPresence},
//	        {Name: modelcheck.ConstraintEmail},
//	    }},
//	    {Field: "name", Constraints: modelcheck.FieldConstraints{
//	        {Name: modelcheck.ConstraintLength, Options: modelcheck.Options{Min: modelcheck.IntPtr(2)}},
//	    }},
//	})
//	if err != nil {
//	    // configuration error: unknown constraint, malformed options, or a
//	    // value shape the constraint cannot measure
//	}
//	for field, messages := range errs {
//	    // field-level validation failures, in constraint declaration order
//	}
//
// # Error Handling
//
// Validation failures are plain strings in the result and are never returned
// as errors. Configuration errors (programmer errors: unknown constraint
// names, missing required options, values incompatible with a constraint's
// precondition) abort the whole call and wrap one of the sentinels in
// errors.go, so they can be classified with errors.Is.
//
// # Concurrency
//
// Evaluation is strictly sequential. The only blocking points are the
// caller-supplied If condition and the custom validator, both of which
// receive the call's context. An error from either aborts the validation
// call; it is never converted into a field error.
package modelcheck
