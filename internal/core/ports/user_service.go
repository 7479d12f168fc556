package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/usermgmt/user-registry/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// UpdateUserInput carries a partial name change. Nil fields are left
// unchanged on the stored record.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
}

// UserService defines the registry use-cases consumed by the dispatcher.
// All returned records are copies; mutating them does not affect the store.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	SetUserRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error)
	ActivateUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetActiveUsers(ctx context.Context) ([]*domain.User, error)
	GetUsersByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
