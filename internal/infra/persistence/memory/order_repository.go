package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// orderRepository keeps orders keyed by their business identifier.
// Access is unsynchronized beyond the map lock itself: two concurrent
// confirmations of one order can interleave between read and write, which
// mirrors the documented storage model.
type orderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

// NewOrderRepository is the constructor for the in-memory order repository.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{
		orders: make(map[string]*entity.Order),
	}
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrOrderNotFound)
	}

	return cloneOrder(order), nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := lo.Map(lo.Values(r.orders), func(order *entity.Order, _ int) *entity.Order {
		return cloneOrder(order)
	})

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}

		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return errors.Errorf("order %s already exists", order.ID)
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	r.orders[order.ID] = cloneOrder(order)

	return nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[order.ID]
	if !ok {
		return errors.WithStack(repository.ErrOrderNotFound)
	}

	order.CreatedAt = stored.CreatedAt

	r.orders[order.ID] = cloneOrder(order)

	return nil
}

func cloneOrder(order *entity.Order) *entity.Order {
	clone := *order
	clone.Items = make([]entity.CartItem, len(order.Items))
	copy(clone.Items, order.Items)

	return &clone
}
