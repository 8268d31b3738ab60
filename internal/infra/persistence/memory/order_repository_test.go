package memory

import (
	"context"
	"testing"
	"time"

	"aquashop/internal/domain/entity"
	"aquashop/internal/domain/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomOrder(id string, createdAt time.Time) *entity.Order {
	order := &entity.Order{
		ID:     id,
		UserID: gofakeit.Email(),
		Items: []entity.CartItem{
			{
				ProductID: gofakeit.UUID(),
				Name:      gofakeit.ProductName(),
				Price:     decimal.NewFromInt(int64(gofakeit.Number(100, 5000))),
				Quantity:  gofakeit.Number(1, 5),
			},
		},
		ShippingAddress: entity.ShippingAddress{
			FullName:     gofakeit.Name(),
			AddressLine1: gofakeit.Street(),
			City:         gofakeit.City(),
			State:        gofakeit.State(),
			ZipCode:      gofakeit.Zip(),
			Country:      "India",
			PhoneNumber:  gofakeit.Phone(),
		},
		Status:    entity.OrderStatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	order.TotalAmount = order.ItemsTotal()

	return order
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := randomOrder("ORD-100", time.Now())
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, "ORD-100")
	require.NoError(t, err)
	assert.Equal(t, order.UserID, found.UserID)
	assert.True(t, order.TotalAmount.Equal(found.TotalAmount))

	err = repo.Create(ctx, randomOrder("ORD-100", time.Now()))
	assert.Error(t, err)
}

func TestOrderRepository_FindAllSortedByCreation(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	base := time.Now()
	require.NoError(t, repo.Create(ctx, randomOrder("ORD-2", base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, randomOrder("ORD-1", base)))
	require.NoError(t, repo.Create(ctx, randomOrder("ORD-3", base.Add(2*time.Minute))))

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-1", orders[0].ID)
	assert.Equal(t, "ORD-2", orders[1].ID)
	assert.Equal(t, "ORD-3", orders[2].ID)
}

func TestOrderRepository_NotFound(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "ORD-404")
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))

	err = repo.Update(ctx, randomOrder("ORD-404", time.Now()))
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	order := randomOrder("ORD-7", time.Now())
	require.NoError(t, repo.Create(ctx, order))

	order.Confirm("Jane", time.Now())
	require.NoError(t, repo.Update(ctx, order))

	stored, err := repo.FindByID(ctx, "ORD-7")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, stored.Status)
	assert.Equal(t, "Jane", stored.ConfirmedBy)
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, randomOrder("ORD-9", time.Now())))

	first, err := repo.FindByID(ctx, "ORD-9")
	require.NoError(t, err)
	first.Status = entity.OrderStatusCancelled
	first.Items[0].Quantity = 999

	second, err := repo.FindByID(ctx, "ORD-9")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, second.Status)
	assert.NotEqual(t, 999, second.Items[0].Quantity)
}
