package modelcheck

// resolveMessage resolves the user-facing message for a failing constraint.
// Precedence, first match wins:
//
//  1. Options.Message verbatim (i18n is ignored entirely).
//  2. The i18n handler, when configured and the lookup key exists. The key is
//     Options.I18n.Key or "validation." + the constraint's message key.
//  3. The constraint's default message verbatim.
//
// Every validator resolves through this chain identically; the custom
// constraint is the one exception, since its return value is already the
// final message.
func resolveMessage(m Model, field string, value any, constraintKey, defaultMsg string, opts Options) string {
	if opts.Message != "" {
		return opts.Message
	}

	if opts.I18n != nil && opts.I18n.Handler != nil {
		key := opts.I18n.Key
		if key == "" {
			key = "validation." + constraintKey
		}
		if opts.I18n.Handler.Exists(key) {
			return opts.I18n.Handler.Translate(key, translationParams(m, field, value, constraintKey, opts))
		}
	}

	return defaultMsg
}

// translationParams assembles the interpolation parameters for a translated
// message: the failing constraint's context plus every constraint-specific
// option that is set, plus the caller's Meta values.
func translationParams(m Model, field string, value any, constraintKey string, opts Options) map[string]any {
	params := map[string]any{
		"constraint": constraintKey,
		"model":      m,
		"field":      field,
		"value":      value,
	}

	if opts.Type != "" {
		params["type"] = string(opts.Type)
	}
	if opts.Instance != nil {
		params["instance"] = instanceTypeName(opts.Instance)
	}
	if opts.Min != nil {
		params["minimum"] = *opts.Min
	}
	if opts.Max != nil {
		params["maximum"] = *opts.Max
	}
	if opts.Pattern != nil {
		params["pattern"] = opts.Pattern.String()
	}
	if opts.On != "" {
		params["on"] = opts.On
	}
	if opts.In != nil {
		params["in"] = opts.In
	}
	if opts.From != nil {
		params["from"] = opts.From
	}

	for k, v := range opts.Meta {
		params[k] = v
	}

	return params
}
