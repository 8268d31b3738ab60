// Package memory provides mutex-guarded in-memory implementations of the
// repository interfaces. They stand in for a persistent store; swapping in a
// real database only requires new implementations of the same interfaces.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userRepository keeps users keyed by ID with a username index.
// All reads and writes copy the entity so callers never alias stored state.
type userRepository struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*entity.User
	byUsername map[string]uuid.UUID
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users:      make(map[uuid.UUID]*entity.User),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return cloneUser(user), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[normalizeUsername(username)]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return cloneUser(r.users[id]), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeUsername(user.Username)
	if _, ok := r.byUsername[key]; ok {
		return errors.WithStack(repository.ErrUserAlreadyExists)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.users[user.ID] = cloneUser(user)
	r.byUsername[key] = user.ID

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	// Usernames are immutable login identifiers; keep the index untouched.
	user.Username = stored.Username
	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = time.Now()

	r.users[user.ID] = cloneUser(user)

	return nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func cloneUser(user *entity.User) *entity.User {
	clone := *user
	if user.OTPExpiresAt != nil {
		expiresAt := *user.OTPExpiresAt
		clone.OTPExpiresAt = &expiresAt
	}

	return &clone
}
