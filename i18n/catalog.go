package i18n

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultLanguage is used when no language is negotiated.
const DefaultLanguage = "en"

// Catalog holds translations for one or more languages. The outer map is
// keyed by language code, the inner maps may nest arbitrarily and are
// addressed with dot-separated keys. A Catalog is immutable after creation
// and safe for concurrent use.
type Catalog struct {
	translations map[string]map[string]any
}

// New creates a Catalog from an already-parsed translations map. Empty
// language codes and nil language maps are rejected.
func New(translations map[string]map[string]any) (*Catalog, error) {
	for lang, entries := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: nil translations map for language %q", ErrInvalidCatalog, lang)
		}
	}
	return &Catalog{translations: translations}, nil
}

// Languages returns the sorted language codes present in the catalog.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Has reports whether the catalog holds a string translation for the given
// language and dot-separated key.
func (c *Catalog) Has(lang, key string) bool {
	entries, ok := c.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(entries, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

// T renders the translation for the given language and key, substituting
// %{name} placeholders from params. A missing translation renders the key
// itself so a broken lookup stays diagnosable.
func (c *Catalog) T(lang, key string, params map[string]any) string {
	entries, ok := c.translations[lang]
	if !ok {
		return interpolate(key, params)
	}
	val, ok := lookup(entries, key)
	if !ok {
		return interpolate(key, params)
	}
	tmpl, ok := val.(string)
	if !ok {
		return interpolate(key, params)
	}
	return interpolate(tmpl, params)
}

// ForLanguage binds the catalog to one language, yielding a handler that
// satisfies the modelcheck TranslationHandler capability.
func (c *Catalog) ForLanguage(lang string) *Handler {
	return &Handler{catalog: c, lang: lang}
}

// Handler is a Catalog fixed to a single language.
type Handler struct {
	catalog *Catalog
	lang    string
}

// Exists reports whether the bound language has a translation for the key.
func (h *Handler) Exists(key string) bool {
	return h.catalog.Has(h.lang, key)
}

// Translate renders the translation for the key with the given params.
func (h *Handler) Translate(key string, params map[string]any) string {
	return h.catalog.T(h.lang, key, params)
}

// lookup traverses a nested map using dot-separated keys, so
// "validation.length.minimum" walks m["validation"]["length"]["minimum"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		nextMap, ok := next.(map[string]any)
		if !ok {
			// Legacy YAML decoders produce map[any]any for nested maps
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			nextMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					nextMap[ks] = v
				}
			}
		}

		current = nextMap
	}

	return nil, false
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders from params, rendering values
// with fmt. Unknown placeholders are left untouched.
func interpolate(tmpl string, params map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
