// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"

	"aquashop/internal/domain/entity"
)

// InvoiceRenderer produces a single paginated document from an order
// snapshot and returns its public location. Success is signaled only after
// the document has been fully written and closed.
type InvoiceRenderer interface {
	Render(ctx context.Context, details *entity.InvoiceDetails) (string, error)
}
