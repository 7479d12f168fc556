package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"
	RoleGuest   Role = "Guest"
)

// ParseRole converts a string to a Role. ok=false means the input names no
// known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleUser, RoleGuest:
		return Role(s), true
	}
	return "", false
}

// Status is the lifecycle state of a user account.
type Status string

const (
	StatusActive    Status = "Active"
	StatusInactive  Status = "Inactive"
	StatusSuspended Status = "Suspended"
	StatusPending   Status = "Pending"
)

// User is the registry's core record. The entity performs no validation;
// callers (the registry service) validate before construction.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser constructs a user with a fresh random identifier, role User and
// status Pending. CreatedAt and UpdatedAt start equal.
func NewUser(username, email, firstName, lastName string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      RoleUser,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Activate transitions the user to Active.
func (u *User) Activate() {
	u.Status = StatusActive
	u.UpdatedAt = time.Now().UTC()
}

// Deactivate transitions the user to Inactive.
func (u *User) Deactivate() {
	u.Status = StatusInactive
	u.UpdatedAt = time.Now().UTC()
}

// SetRole replaces the user's role.
func (u *User) SetRole(role Role) {
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
}

// Clone returns an independent copy, so stored records never leak mutable
// references across the repository boundary.
func (u *User) Clone() *User {
	clone := *u
	return &clone
}
