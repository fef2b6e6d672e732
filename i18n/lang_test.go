package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelcheck/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "de", "fr-CA"}

	t.Run("exact match wins", func(t *testing.T) {
		assert.Equal(t, "de", i18n.ParseAcceptLanguage("de", supported, "en"))
		assert.Equal(t, "fr-ca", i18n.ParseAcceptLanguage("fr-CA", supported, "en"))
	})

	t.Run("quality ordering is respected", func(t *testing.T) {
		assert.Equal(t, "de", i18n.ParseAcceptLanguage("en;q=0.5, de;q=0.9", supported, "en"))
	})

	t.Run("base language fallback", func(t *testing.T) {
		assert.Equal(t, "de", i18n.ParseAcceptLanguage("de-AT", supported, "en"))
	})

	t.Run("exact matches are exhausted before fallback", func(t *testing.T) {
		// de-AT (q=1) only matches via fallback; the lower-quality exact
		// match on en still wins the exact phase.
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("de-AT, en;q=0.3", supported, "fr"))
	})

	t.Run("default on empty header or no match", func(t *testing.T) {
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("", supported, "en"))
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("ja, ko", supported, "en"))
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("de", nil, "en"))
	})

	t.Run("malformed quality values default to 1", func(t *testing.T) {
		assert.Equal(t, "de", i18n.ParseAcceptLanguage("de;q=broken", supported, "en"))
	})
}
