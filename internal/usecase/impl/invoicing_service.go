// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "aquashop/internal/delivery/context"
	"aquashop/internal/domain/entity"
	domainerrors "aquashop/internal/domain/errors"
	"aquashop/internal/domain/repository"
	"aquashop/internal/domain/service"
	"aquashop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// invoicingService implements the InvoicingUsecase interface.
type invoicingService struct {
	orderRepo repository.OrderRepository
	renderer  service.InvoiceRenderer
	logger    *slog.Logger
}

// InvoicingServiceParams holds dependencies for invoicingService, injected by Fx.
type InvoicingServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Renderer  service.InvoiceRenderer
	Logger    *slog.Logger
}

// NewInvoicingService is the constructor for invoicingService.
func NewInvoicingService(params InvoicingServiceParams) usecase.InvoicingUsecase {
	return &invoicingService{
		orderRepo: params.OrderRepo,
		renderer:  params.Renderer,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *invoicingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns every order for the admin dashboard.
func (srv *invoicingService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ConfirmOrder transitions a pending order to CONFIRMED and renders the
// client and audit invoices from one shared snapshot.
//
// The status mutation is applied optimistically before rendering and
// reverted if either render fails. This is a compensating transaction, not
// an atomic one: concurrent readers can observe the order CONFIRMED inside
// the render window, and two racing confirmations of one order are not
// serialized.
func (srv *invoicingService) ConfirmOrder(ctx context.Context, input *usecase.ConfirmOrderInput) (*usecase.ConfirmOrderOutput, error) {
	orderID := strings.TrimSpace(input.OrderID)
	confirmerName := strings.TrimSpace(input.ConfirmationName)
	if orderID == "" || confirmerName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order ID and confirmation name are required")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("confirm requested for unknown order")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.Status == entity.OrderStatusConfirmed {
		return nil, domainerrors.ErrOrderAlreadyConfirmed.WrapMessage("order " + orderID)
	}

	previousStatus := order.Status

	order.Confirm(confirmerName, time.Now())
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to mark order confirmed")
	}

	srv.log(ctx).Info("Order confirmed, generating invoices",
		slog.String("order_id", order.ID),
		slog.String("confirmed_by", confirmerName),
	)

	clientURL, auditURL, renderErr := srv.renderInvoicePair(ctx, order, confirmerName)
	if renderErr != nil {
		srv.compensate(ctx, order, previousStatus)

		srv.log(ctx).Error("Invoice generation failed, confirmation reverted",
			slog.String("order_id", order.ID),
			slog.Any("error", renderErr),
		)

		return nil, errors.Wrap(domainerrors.ErrInvoiceGeneration.WithDetails(renderErr.Error()), "invoice generation failed")
	}

	return &usecase.ConfirmOrderOutput{
		Order:            order,
		ClientInvoiceURL: clientURL,
		AuditInvoiceURL:  auditURL,
	}, nil
}

// renderInvoicePair renders the CLIENT and then the AUDIT document from an
// identical snapshot sharing one invoice date.
func (srv *invoicingService) renderInvoicePair(ctx context.Context, order *entity.Order, confirmerName string) (string, string, error) {
	invoiceDate := time.Now()

	snapshot := func(invoiceType entity.InvoiceType) *entity.InvoiceDetails {
		items := make([]entity.CartItem, len(order.Items))
		copy(items, order.Items)

		return &entity.InvoiceDetails{
			OrderID:          order.ID,
			CustomerName:     order.ShippingAddress.FullName,
			CustomerAddress:  order.ShippingAddress,
			Items:            items,
			TotalAmount:      order.TotalAmount,
			ConfirmationName: confirmerName,
			InvoiceDate:      invoiceDate,
			Type:             invoiceType,
		}
	}

	clientURL, err := srv.renderer.Render(ctx, snapshot(entity.InvoiceTypeClient))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to render client invoice")
	}

	auditURL, err := srv.renderer.Render(ctx, snapshot(entity.InvoiceTypeAudit))
	if err != nil {
		// The already-written client document is left in place; a retry
		// produces fresh filenames.
		return "", "", errors.Wrap(err, "failed to render audit invoice")
	}

	return clientURL, auditURL, nil
}

// compensate reverts the optimistic confirmation after a render failure.
func (srv *invoicingService) compensate(ctx context.Context, order *entity.Order, previousStatus entity.OrderStatus) {
	order.RevertConfirmation(time.Now())
	order.Status = previousStatus

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		// The order stays visibly confirmed with no invoices; nothing more
		// can be done without a transactional store, so record it loudly.
		srv.log(ctx).Error("Compensating rollback failed",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
