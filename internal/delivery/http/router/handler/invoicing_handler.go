// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"aquashop/internal/delivery/http/response"
	"aquashop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InvoicingHandler holds dependencies for admin invoicing handlers.
type InvoicingHandler struct {
	uc     usecase.InvoicingUsecase
	logger *slog.Logger
}

// NewInvoicingHandler is the constructor for InvoicingHandler, injected by Fx.
func NewInvoicingHandler(uc usecase.InvoicingUsecase, logger *slog.Logger) *InvoicingHandler {
	return &InvoicingHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders returns every order for the admin dashboard view.
func (h *InvoicingHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// ConfirmOrder confirms a pending order and returns both invoice locations.
func (h *InvoicingHandler) ConfirmOrder(c echo.Context) error {
	var input *usecase.ConfirmOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Order ID and confirmation name are required.")
	}

	output, err := h.uc.ConfirmOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, fmt.Sprintf("Order %s confirmed successfully.", output.Order.ID))
}
