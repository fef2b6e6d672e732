package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelcheck"
)

func TestPresence(t *testing.T) {
	m := modelcheck.Model{"name": "Alice"}

	t.Run("passes for set values", func(t *testing.T) {
		for _, value := range []any{"", "x", 0, false, []string{}} {
			msg, err := modelcheck.Presence(m, "name", value, modelcheck.Options{})
			require.NoError(t, err)
			assert.Empty(t, msg)
		}
	})

	t.Run("fails for nil and missing values", func(t *testing.T) {
		var typedNil *int
		for _, value := range []any{nil, typedNil, []string(nil), map[string]int(nil)} {
			msg, err := modelcheck.Presence(m, "name", value, modelcheck.Options{})
			require.NoError(t, err)
			assert.Equal(t, "is required", msg)
		}
	})
}

func TestAbsence(t *testing.T) {
	m := modelcheck.Model{}

	t.Run("is the exact complement of presence", func(t *testing.T) {
		values := []any{nil, "", "x", 0, false, []string(nil), []string{"a"}}
		for _, value := range values {
			pMsg, err := modelcheck.Presence(m, "f", value, modelcheck.Options{})
			require.NoError(t, err)
			aMsg, err := modelcheck.Absence(m, "f", value, modelcheck.Options{})
			require.NoError(t, err)

			assert.NotEqual(t, pMsg == "", aMsg == "", "value %#v", value)
		}
	})

	t.Run("fails for set values", func(t *testing.T) {
		msg, err := modelcheck.Absence(m, "f", "something", modelcheck.Options{})
		require.NoError(t, err)
		assert.Equal(t, "must be blank", msg)
	})
}
