package modelcheck

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Email regex - conventional local-part@domain, ASCII, case-insensitive.
// Dot-separated segments in the local part rule out consecutive dots, and the
// domain needs at least two labels.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_%+\-]+(?:\.[A-Za-z0-9_%+\-]+)*@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)+$`)

// IsEmailValid reports whether s is a syntactically valid email address.
func IsEmailValid(s string) bool {
	return emailRegex.MatchString(s)
}

// IsUUIDValid reports whether s is a canonical UUID after stripping
// whitespace, hyphens, and periods. Only versions 1-5 with RFC 4122 variant
// bits are accepted, so a nil UUID or a version-0 layout is rejected even
// though it parses.
func IsUUIDValid(s string) bool {
	stripped := strings.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '.':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, s)

	// Fast rejection before parsing: 32 hex digits exactly
	if len(stripped) != 32 {
		return false
	}

	id, err := uuid.Parse(stripped)
	if err != nil {
		return false
	}
	if v := id.Version(); v < 1 || v > 5 {
		return false
	}
	return id.Variant() == uuid.RFC4122
}
