// Package memstore provides the in-memory UserRepository. State is volatile:
// a process restart loses all records.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/usermgmt/user-registry/internal/core/domain"
)

// UserStore holds the primary record map plus two secondary indexes. A single
// RWMutex covers all three maps, so no caller can ever observe the primary
// store and an index in a mutually inconsistent state.
//
// The indexes trade memory for O(1) lookup by the two human-facing keys
// (username, email) next to the canonical identifier. Every path that inserts
// or removes a record must touch all three maps before releasing the lock.
type UserStore struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*domain.User
	usernameIndex map[string]uuid.UUID
	emailIndex    map[string]uuid.UUID
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:         make(map[uuid.UUID]*domain.User),
		usernameIndex: make(map[string]uuid.UUID),
		emailIndex:    make(map[string]uuid.UUID),
	}
}

// Insert stores a new user after checking both uniqueness constraints. The
// checks and the three map writes happen under one lock acquisition, so a
// failed insert leaves no partial state behind.
func (s *UserStore) Insert(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernameIndex[user.Username]; exists {
		return domain.DuplicateError("Username '%s' already exists", user.Username)
	}
	if _, exists := s.emailIndex[user.Email]; exists {
		return domain.DuplicateError("Email '%s' already exists", user.Email)
	}

	stored := user.Clone()
	s.users[stored.ID] = stored
	s.usernameIndex[stored.Username] = stored.ID
	s.emailIndex[stored.Email] = stored.ID
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByIDLocked(id)
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, domain.NotFoundError("Username '%s' not found", username)
	}
	return s.findByIDLocked(id)
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emailIndex[email]
	if !ok {
		return nil, domain.NotFoundError("Email '%s' not found", email)
	}
	return s.findByIDLocked(id)
}

// Update replaces the stored record with the same ID. Username and email are
// immutable after creation, so the indexes need no maintenance here.
func (s *UserStore) Update(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.NotFoundError("User ID '%s' not found", user.ID)
	}
	s.users[user.ID] = user.Clone()
	return nil
}

// Delete removes the record and both index entries under one lock.
func (s *UserStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return domain.NotFoundError("User ID '%s' not found", id)
	}
	delete(s.users, id)
	delete(s.usernameIndex, user.Username)
	delete(s.emailIndex, user.Email)
	return nil
}

// List returns copies of all current records. Map iteration order applies:
// callers get no ordering guarantee.
func (s *UserStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.Clone())
	}
	return users, nil
}

// Count reports the number of stored records.
func (s *UserStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *UserStore) findByIDLocked(id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domain.NotFoundError("User ID '%s' not found", id)
	}
	return user.Clone(), nil
}
