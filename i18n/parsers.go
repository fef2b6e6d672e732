package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseJSON builds a Catalog from JSON content keyed by language code:
//
//	{"en": {"validation": {"email": "must be a valid email"}}}
//
// Languages whose value is not an object are rejected.
func ParseJSON(ctx context.Context, content string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	translations, err := languageMaps(data)
	if err != nil {
		return nil, err
	}
	return New(translations)
}

// ParseYAML builds a Catalog from YAML content keyed by language code:
//
//	en:
//	  validation:
//	    email: must be a valid email
func ParseYAML(ctx context.Context, content string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	translations, err := languageMaps(data)
	if err != nil {
		return nil, err
	}
	return New(translations)
}

func languageMaps(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		result[lang] = entries
	}
	return result, nil
}
