// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"aquashop/internal/domain/entity"
)

// ConfirmOrderInput defines the data required to confirm a pending order.
// ConfirmationName is the name of the staff member confirming the order.
type ConfirmOrderInput struct {
	OrderID          string `json:"orderId" validate:"required"`
	ConfirmationName string `json:"confirmationName" validate:"required"`
}

// ConfirmOrderOutput returns the confirmed order and the locations of the
// two generated documents.
type ConfirmOrderOutput struct {
	Order            *entity.Order `json:"order"`
	ClientInvoiceURL string        `json:"clientInvoiceUrl"`
	AuditInvoiceURL  string        `json:"auditInvoiceUrl"`
}

// InvoicingUsecase defines the admin invoicing business operations.
type InvoicingUsecase interface {
	// ListOrders returns every order for the admin dashboard, oldest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// ConfirmOrder transitions a pending order to CONFIRMED and generates
	// the client and audit invoices. The status mutation is reverted when
	// either document fails to render.
	ConfirmOrder(ctx context.Context, input *ConfirmOrderInput) (*ConfirmOrderOutput, error)
}
