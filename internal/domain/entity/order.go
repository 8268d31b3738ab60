// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// CartItem is a single purchased line within an order. It is immutable once
// embedded in an order.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // Unit price, non-negative.
	Quantity  int             `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingAddress is a plain value object describing where an order ships.
type ShippingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phoneNumber"`
}

// Order represents a customer order created at checkout handoff.
// ConfirmedBy is present iff the order has been confirmed by a staff member.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	ConfirmedBy     string          `json:"confirmedBy,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Confirm transitions the order to CONFIRMED, recording who confirmed it.
func (o *Order) Confirm(confirmerName string, now time.Time) {
	o.Status = OrderStatusConfirmed
	o.ConfirmedBy = confirmerName
	o.UpdatedAt = now
}

// RevertConfirmation undoes a confirmation, returning the order to PENDING.
func (o *Order) RevertConfirmation(now time.Time) {
	o.Status = OrderStatusPending
	o.ConfirmedBy = ""
	o.UpdatedAt = now
}

// ItemsTotal sums price multiplied by quantity over all items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}
