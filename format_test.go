package modelcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/modelcheck"
)

func TestIsEmailValid(t *testing.T) {
	t.Run("accepts conventional addresses", func(t *testing.T) {
		valid := []string{
			"user@example.com",
			"first.last@example.com",
			"USER@EXAMPLE.COM",
			"user_name+tag@sub.example.co",
			"u@d.io",
			"user%mail@example-host.com",
		}
		for _, email := range valid {
			assert.True(t, modelcheck.IsEmailValid(email), email)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		invalid := []string{
			"",
			"plainaddress",
			"user@example",
			"user..name@example.com",
			".user@example.com",
			"user.@example.com",
			"user@.example.com",
			"user@example..com",
			"@example.com",
			"user@",
			"user name@example.com",
			"user@exam ple.com",
		}
		for _, email := range invalid {
			assert.False(t, modelcheck.IsEmailValid(email), email)
		}
	})
}

func TestIsUUIDValid(t *testing.T) {
	t.Run("accepts canonical v1-v5 UUIDs", func(t *testing.T) {
		valid := []string{
			"f47ac10b-58cc-4372-a567-0e02b2c3d479",
			"f47ac10b58cc4372a5670e02b2c3d479",
			"6ba7b810-9dad-11d1-80b4-00c04fd430c8", // v1
			"6ba7b811-9dad-31d1-80b4-00c04fd430c8", // v3
			"987fbc97-4bed-5078-9f07-9141ba07c9f3", // v5
		}
		for _, id := range valid {
			assert.True(t, modelcheck.IsUUIDValid(id), id)
		}
	})

	t.Run("ignores whitespace hyphens and periods", func(t *testing.T) {
		assert.True(t, modelcheck.IsUUIDValid(" f47ac10b.58cc.4372.a567.0e02b2c3d479 "))
		assert.True(t, modelcheck.IsUUIDValid("f47a c10b 58cc 4372 a567 0e02 b2c3 d479"))
	})

	t.Run("rejects invalid version nibble", func(t *testing.T) {
		assert.False(t, modelcheck.IsUUIDValid("f47ac10b-58cc-0372-a567-0e02b2c3d479"))
		assert.False(t, modelcheck.IsUUIDValid("f47ac10b-58cc-6372-a567-0e02b2c3d479"))
	})

	t.Run("rejects invalid variant nibble", func(t *testing.T) {
		assert.False(t, modelcheck.IsUUIDValid("f47ac10b-58cc-4372-0567-0e02b2c3d479"))
		assert.False(t, modelcheck.IsUUIDValid("f47ac10b-58cc-4372-c567-0e02b2c3d479"))
	})

	t.Run("rejects non-UUID strings", func(t *testing.T) {
		invalid := []string{
			"",
			"not-a-uuid",
			"00000000-0000-0000-0000-000000000000", // nil UUID: version 0
			"f47ac10b-58cc-4372-a567-0e02b2c3d47",  // 31 digits
			"f47ac10b-58cc-4372-a567-0e02b2c3d4790",
			"g47ac10b-58cc-4372-a567-0e02b2c3d479",
		}
		for _, id := range invalid {
			assert.False(t, modelcheck.IsUUIDValid(id), id)
		}
	})
}
