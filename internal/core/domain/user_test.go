package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("bob", "bob@test.com", "Bob", "Jones")

	if u.ID == uuid.Nil {
		t.Error("expected a non-nil identifier")
	}
	if u.Role != RoleUser {
		t.Errorf("default role: want %q, got %q", RoleUser, u.Role)
	}
	if u.Status != StatusPending {
		t.Errorf("default status: want %q, got %q", StatusPending, u.Status)
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("timestamps must be set at construction")
	}
	if !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Error("created and updated must start equal")
	}
}

func TestNewUser_UniqueIdentifiers(t *testing.T) {
	a := NewUser("a_user", "a@x.com", "A", "A")
	b := NewUser("b_user", "b@x.com", "B", "B")
	if a.ID == b.ID {
		t.Error("two users must never share an identifier")
	}
}

func TestUser_Activate(t *testing.T) {
	u := NewUser("bob", "bob@test.com", "Bob", "Jones")
	u.Activate()

	if u.Status != StatusActive {
		t.Errorf("want %q, got %q", StatusActive, u.Status)
	}
	if u.UpdatedAt.Before(u.CreatedAt) {
		t.Error("updated must never precede created")
	}
}

func TestUser_Deactivate(t *testing.T) {
	u := NewUser("bob", "bob@test.com", "Bob", "Jones")
	u.Deactivate()

	if u.Status != StatusInactive {
		t.Errorf("want %q, got %q", StatusInactive, u.Status)
	}
}

func TestUser_SetRole(t *testing.T) {
	u := NewUser("bob", "bob@test.com", "Bob", "Jones")
	before := u.UpdatedAt
	u.SetRole(RoleManager)

	if u.Role != RoleManager {
		t.Errorf("want %q, got %q", RoleManager, u.Role)
	}
	if u.UpdatedAt.Before(before) {
		t.Error("SetRole must refresh the updated timestamp")
	}
}

func TestUser_Clone_Independent(t *testing.T) {
	u := NewUser("bob", "bob@test.com", "Bob", "Jones")
	clone := u.Clone()
	clone.FirstName = "Robert"

	if u.FirstName != "Bob" {
		t.Error("mutating a clone must not affect the original")
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"Admin", "Manager", "User", "Guest"} {
		if _, ok := ParseRole(s); !ok {
			t.Errorf("ParseRole(%q): expected ok", s)
		}
	}
	for _, s := range []string{"admin", "root", ""} {
		if _, ok := ParseRole(s); ok {
			t.Errorf("ParseRole(%q): expected !ok", s)
		}
	}
}
