package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"aquashop/config"
	"aquashop/internal/domain/entity"
	"aquashop/internal/infra/auth"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoData(t *testing.T) {
	userRepo := NewUserRepository()
	orderRepo := NewOrderRepository()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	hasher := auth.NewBcryptHasher(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := context.Background()
	require.NoError(t, SeedDemoData(ctx, userRepo, orderRepo, hasher, logger))

	owner, err := userRepo.FindByUsername(ctx, "owner@aqua.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, owner.Role)
	assert.True(t, hasher.Check("password123", owner.PasswordHash))

	otpUser, err := userRepo.FindByUsername(ctx, "test@otp.com")
	require.NoError(t, err)
	assert.Empty(t, otpUser.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, otpUser.Role)

	orders, err := orderRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "ORD-1", first.ID)
	assert.Equal(t, entity.OrderStatusPending, first.Status)
	// 2500 + 800*2
	assert.True(t, first.TotalAmount.Equal(decimal.NewFromInt(4100)))
}
