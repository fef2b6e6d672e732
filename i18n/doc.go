// Package i18n provides a catalog-backed implementation of the translation
// handler capability consumed by the modelcheck message resolver.
//
// A Catalog holds per-language translation maps with dot-separated nested
// keys ("validation.length.minimum") and renders named placeholders in the
// form "%{name}". Catalogs are built from caller-supplied JSON or YAML
// content; the package never touches the filesystem or the network.
//
// # Usage
//
//	catalog, err := i18n.ParseYAML(ctx, content)
//	if err != nil {
//	    // malformed catalog content
//	}
//	handler := catalog.ForLanguage("de")
//
//	msgs, err := modelcheck.ValidateField(ctx, model, "email", modelcheck.FieldConstraints{
//	    {Name: modelcheck.ConstraintEmail, Options: modelcheck.Options{
//	        I18n: &modelcheck.I18n{Handler: handler},
//	    }},
//	})
//
// A Handler bound to a language that has no catalog entry for a key reports
// Exists as false, which makes the resolver fall back to the constraint's
// default message instead of emitting a broken translation.
package i18n
