package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/usermgmt/user-registry/internal/core/domain"
)

func TestUsername_Valid(t *testing.T) {
	for _, name := range []string{"bob", "alice_99", "ABC", "a_b", strings.Repeat("x", 50)} {
		if err := Username(name); err != nil {
			t.Errorf("Username(%q): unexpected error: %v", name, err)
		}
	}
}

func TestUsername_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		wantMsg string
	}{
		{"ab", "Username must be at least 3 characters"},
		{"", "Username must be at least 3 characters"},
		{strings.Repeat("x", 51), "Username must be less than 50 characters"},
		{"has space", "Username can only contain letters, numbers, and underscores"},
		{"dash-ed", "Username can only contain letters, numbers, and underscores"},
		{"dot.ted", "Username can only contain letters, numbers, and underscores"},
	}

	for _, tc := range cases {
		err := Username(tc.name)
		if err == nil {
			t.Errorf("Username(%q): expected error, got nil", tc.name)
			continue
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Username(%q): expected validation error kind, got %v", tc.name, err)
		}
		if err.Error() != tc.wantMsg {
			t.Errorf("Username(%q): message %q, want %q", tc.name, err.Error(), tc.wantMsg)
		}
	}
}

func TestEmail_Valid(t *testing.T) {
	for _, email := range []string{
		"alice@x.com",
		"a.b+c_d%e-f@sub.domain.org",
		"ALICE@EXAMPLE.IO",
	} {
		if err := Email(email); err != nil {
			t.Errorf("Email(%q): unexpected error: %v", email, err)
		}
	}
}

func TestEmail_Invalid(t *testing.T) {
	for _, email := range []string{
		"no-at-sign",
		"a@b",      // no dot in domain
		"a@b.c1",   // TLD contains a digit
		"a@b.c",    // TLD shorter than 2 letters
		"@x.com",   // empty local part
		"a b@x.com",
	} {
		err := Email(email)
		if err == nil {
			t.Errorf("Email(%q): expected error, got nil", email)
			continue
		}
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Email(%q): expected validation error kind, got %v", email, err)
		}
		if err.Error() != "Invalid email format" {
			t.Errorf("Email(%q): message %q", email, err.Error())
		}
	}
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"  bob  ":        "bob",
		"\tGET alice\r\n": "GET alice",
		"plain":          "plain",
		"   ":            "",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}
