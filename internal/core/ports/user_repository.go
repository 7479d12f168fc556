package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/usermgmt/user-registry/internal/core/domain"
)

// UserRepository defines storage operations for user records. Implementations
// must keep the primary store and the username/email indexes consistent as a
// single atomic unit per call, and must be safe for concurrent use.
type UserRepository interface {
	// Insert stores a new user. Fails with domain.ErrDuplicateUser when the
	// username or email is already indexed; on failure no state changes.
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update replaces the stored record with the same ID. Username and email
	// are immutable after creation, so the indexes are untouched.
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the record and both index entries.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all current records in unspecified order.
	List(ctx context.Context) ([]*domain.User, error)
	// Count reports the number of stored records.
	Count(ctx context.Context) int
}
