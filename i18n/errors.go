package i18n

import "errors"

var (
	// JSON catalogs
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON catalog content")

	// YAML catalogs
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML catalog content")

	// Catalog structure
	ErrInvalidCatalog = errors.New("invalid catalog structure")
)
