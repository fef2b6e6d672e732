package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/modelcheck"
)

func TestConfirmation(t *testing.T) {
	t.Run("passes when sibling field matches strictly", func(t *testing.T) {
		m := modelcheck.Model{"password": "secret", "password_confirmation": "secret"}
		opts := modelcheck.Options{On: "password"}

		msg, err := modelcheck.Confirmation(m, "password_confirmation", "secret", opts)
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("fails on mismatch", func(t *testing.T) {
		m := modelcheck.Model{"password": "secret"}
		msg, err := modelcheck.Confirmation(m, "password_confirmation", "typo", modelcheck.Options{On: "password"})
		require.NoError(t, err)
		assert.Equal(t, "must match password", msg)
	})

	t.Run("no type coercion", func(t *testing.T) {
		m := modelcheck.Model{"code": 123}
		msg, err := modelcheck.Confirmation(m, "code_confirmation", "123", modelcheck.Options{On: "code"})
		require.NoError(t, err)
		assert.NotEmpty(t, msg)
	})

	t.Run("missing on is a configuration error", func(t *testing.T) {
		_, err := modelcheck.Confirmation(modelcheck.Model{}, "f", "x", modelcheck.Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, modelcheck.ErrMissingOption)
	})
}

func TestInclusionExclusion(t *testing.T) {
	m := modelcheck.Model{}
	set := []any{"red", "green", "blue", 7}

	t.Run("inclusion and exclusion are exact complements", func(t *testing.T) {
		values := []any{"red", "yellow", 7, "7", nil}
		for _, value := range values {
			inMsg, err := modelcheck.Inclusion(m, "f", value, modelcheck.Options{In: set})
			require.NoError(t, err)
			exMsg, err := modelcheck.Exclusion(m, "f", value, modelcheck.Options{From: set})
			require.NoError(t, err)

			assert.NotEqual(t, inMsg == "", exMsg == "", "value %#v", value)
		}
	})

	t.Run("membership is strict", func(t *testing.T) {
		msg, err := modelcheck.Inclusion(m, "f", "7", modelcheck.Options{In: set})
		require.NoError(t, err)
		assert.NotEmpty(t, msg, "string \"7\" must not match int 7")
	})

	t.Run("uncomparable values never match", func(t *testing.T) {
		msg, err := modelcheck.Inclusion(m, "f", []string{"red"}, modelcheck.Options{In: set})
		require.NoError(t, err)
		assert.NotEmpty(t, msg)

		msg, err = modelcheck.Exclusion(m, "f", []string{"red"}, modelcheck.Options{From: set})
		require.NoError(t, err)
		assert.Empty(t, msg)
	})

	t.Run("missing sets are configuration errors", func(t *testing.T) {
		_, err := modelcheck.Inclusion(m, "f", "x", modelcheck.Options{})
		assert.ErrorIs(t, err, modelcheck.ErrMissingOption)

		_, err = modelcheck.Exclusion(m, "f", "x", modelcheck.Options{})
		assert.ErrorIs(t, err, modelcheck.ErrMissingOption)
	})

	t.Run("empty sets are valid options", func(t *testing.T) {
		msg, err := modelcheck.Inclusion(m, "f", "x", modelcheck.Options{In: []any{}})
		require.NoError(t, err)
		assert.NotEmpty(t, msg)

		msg, err = modelcheck.Exclusion(m, "f", "x", modelcheck.Options{From: []any{}})
		require.NoError(t, err)
		assert.Empty(t, msg)
	})
}
