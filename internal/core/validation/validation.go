// Package validation holds the pure format checks applied to user input
// before any record is constructed. The rules (and their messages) are part
// of the protocol surface, so they are written out explicitly rather than
// delegated to a generic validation library.
package validation

import (
	"regexp"
	"strings"

	"github.com/usermgmt/user-registry/internal/core/domain"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Username checks length (3–50) and charset (letters, digits, underscore).
func Username(username string) error {
	if len(username) < 3 {
		return domain.ValidationError("Username must be at least 3 characters")
	}
	if len(username) > 50 {
		return domain.ValidationError("Username must be less than 50 characters")
	}
	if !usernamePattern.MatchString(username) {
		return domain.ValidationError("Username can only contain letters, numbers, and underscores")
	}
	return nil
}

// Email checks the address against local-part@domain.tld with a TLD of two
// or more letters. Matching is case-sensitive, like the rest of the registry.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return domain.ValidationError("Invalid email format")
	}
	return nil
}

// Sanitize trims leading and trailing whitespace. Applied by callers where
// raw input enters the system; not enforced on every field.
func Sanitize(s string) string {
	return strings.TrimSpace(s)
}
