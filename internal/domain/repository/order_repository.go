// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"aquashop/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are created at checkout handoff and mutated only by the
// confirmation workflow; they are never deleted.
type OrderRepository interface {
	// FindByID retrieves a single order by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindAll retrieves every order, oldest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order.
	Update(ctx context.Context, order *entity.Order) error
}
