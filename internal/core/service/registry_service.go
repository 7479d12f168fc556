package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-registry/internal/core/domain"
	"github.com/usermgmt/user-registry/internal/core/ports"
	"github.com/usermgmt/user-registry/internal/core/validation"
)

// RegistryService implements the user registry use-cases on top of a
// UserRepository. It owns validation and the create-time lifecycle override;
// the repository owns storage, indexing and uniqueness.
type RegistryService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewRegistryService(repo ports.UserRepository, logger zerolog.Logger) *RegistryService {
	return &RegistryService{repo: repo, logger: logger}
}

// CreateUser validates the input, constructs the user and stores it. Newly
// created users are activated immediately, overriding the entity's Pending
// default. A duplicate username or email fails before any state changes.
func (s *RegistryService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if err := validation.Username(input.Username); err != nil {
		return nil, err
	}
	if err := validation.Email(input.Email); err != nil {
		return nil, err
	}

	user := domain.NewUser(input.Username, input.Email, input.FirstName, input.LastName)
	user.Activate()

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("user created")

	return user, nil
}

func (s *RegistryService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RegistryService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *RegistryService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateUser applies a partial name change. Nil fields are left unchanged;
// the updated timestamp is refreshed either way.
func (s *RegistryService) UpdateUser(ctx context.Context, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and frees its username and email for reuse.
func (s *RegistryService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}

// ListUsers returns all current records in unspecified order.
func (s *RegistryService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// SetUserRole changes the user's role.
func (s *RegistryService) SetUserRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	return s.mutate(ctx, id, func(u *domain.User) { u.SetRole(role) })
}

// ActivateUser transitions the user to Active.
func (s *RegistryService) ActivateUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.mutate(ctx, id, (*domain.User).Activate)
}

// DeactivateUser transitions the user to Inactive.
func (s *RegistryService) DeactivateUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.mutate(ctx, id, (*domain.User).Deactivate)
}

// GetActiveUsers returns users whose status is Active.
func (s *RegistryService) GetActiveUsers(ctx context.Context) ([]*domain.User, error) {
	return s.filter(ctx, func(u *domain.User) bool { return u.Status == domain.StatusActive })
}

// GetUsersByRole returns users holding the given role.
func (s *RegistryService) GetUsersByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.filter(ctx, func(u *domain.User) bool { return u.Role == role })
}

// mutate is the shared fetch-mutate-store path for lifecycle operations.
func (s *RegistryService) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.User)) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(user)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *RegistryService) filter(ctx context.Context, keep func(*domain.User) bool) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := users[:0]
	for _, u := range users {
		if keep(u) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}
