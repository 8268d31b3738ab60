package memory

import (
	"context"
	"log/slog"
	"time"

	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/repository"
	"aquashop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const demoPassword = "password123"

// SeedDemoData loads the demo accounts and pending orders used by the
// storefront when no real checkout traffic exists yet. The OTP test account
// deliberately has no password so OTP login is its only credential.
func SeedDemoData(
	ctx context.Context,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	passwordHash, err := hasher.Hash(demoPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash demo password")
	}

	users := []*entity.User{
		{Username: "owner@aqua.com", Role: entity.RoleOwner, PasswordHash: passwordHash},
		{Username: "admin@aqua.com", Role: entity.RoleAdmin, PasswordHash: passwordHash},
		{Username: "customer@aqua.com", Role: entity.RoleCustomer, PasswordHash: passwordHash},
		{Username: "test@otp.com", Role: entity.RoleCustomer},
	}

	for _, user := range users {
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrapf(err, "failed to seed user %s", user.Username)
		}
	}

	now := time.Now()
	orders := []*entity.Order{
		{
			ID:     "ORD-1",
			UserID: "customer@aqua.com",
			Items: []entity.CartItem{
				{ProductID: "prod-001", Name: "Blue Tang", Price: decimal.NewFromInt(2500), Quantity: 1},
				{ProductID: "prod-002", Name: "Coral Frag", Price: decimal.NewFromInt(800), Quantity: 2},
			},
			ShippingAddress: entity.ShippingAddress{
				FullName:     "John Doe",
				AddressLine1: "123 Ocean Drive",
				City:         "Mumbai",
				State:        "Maharashtra",
				ZipCode:      "400001",
				Country:      "India",
				PhoneNumber:  "+919876543210",
			},
			Status:    entity.OrderStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:     "ORD-2",
			UserID: "customer2@aqua.com",
			Items: []entity.CartItem{
				{ProductID: "prod-003", Name: "Clownfish Pair", Price: decimal.NewFromInt(3000), Quantity: 1},
			},
			ShippingAddress: entity.ShippingAddress{
				FullName:     "Jane Smith",
				AddressLine1: "456 Reef Lane",
				City:         "Delhi",
				State:        "Delhi",
				ZipCode:      "110001",
				Country:      "India",
				PhoneNumber:  "+919988776655",
			},
			Status:    entity.OrderStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, order := range orders {
		order.TotalAmount = order.ItemsTotal()
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrapf(err, "failed to seed order %s", order.ID)
		}
	}

	logger.Info("Seeded demo data",
		slog.Int("users", len(users)),
		slog.Int("orders", len(orders)),
	)

	return nil
}
