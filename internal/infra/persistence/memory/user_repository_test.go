package memory

import (
	"context"
	"testing"
	"time"

	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{
		Username:     "customer@aqua.com",
		Role:         entity.RoleCustomer,
		PasswordHash: "hash",
	}

	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "customer@aqua.com", byID.Username)

	byUsername, err := repo.FindByUsername(ctx, "customer@aqua.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	// Lookup is case-insensitive on the login identifier.
	byUpper, err := repo.FindByUsername(ctx, "Customer@Aqua.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUpper.ID)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "dup@aqua.com", Role: entity.RoleCustomer}))

	err := repo.Create(ctx, &entity.User{Username: "dup@aqua.com", Role: entity.RoleCustomer})
	assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	_, err = repo.FindByUsername(ctx, "ghost@aqua.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = repo.Update(ctx, &entity.User{ID: uuid.New(), Username: "ghost@aqua.com"})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_UpdateOTPState(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Username: "test@otp.com", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, user))

	user.SetOTP("123456", time.Now().Add(5*time.Minute))
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByUsername(ctx, "test@otp.com")
	require.NoError(t, err)
	assert.True(t, stored.HasOTP())
	assert.Equal(t, "123456", stored.OTP)

	stored.ClearOTP()
	require.NoError(t, repo.Update(ctx, stored))

	cleared, err := repo.FindByUsername(ctx, "test@otp.com")
	require.NoError(t, err)
	assert.False(t, cleared.HasOTP())
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Username: "copy@aqua.com", Role: entity.RoleCustomer}
	require.NoError(t, repo.Create(ctx, user))

	first, err := repo.FindByUsername(ctx, "copy@aqua.com")
	require.NoError(t, err)
	first.OTP = "999999" // mutate the returned copy only

	second, err := repo.FindByUsername(ctx, "copy@aqua.com")
	require.NoError(t, err)
	assert.Empty(t, second.OTP)
}
