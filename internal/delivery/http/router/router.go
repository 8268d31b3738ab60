// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aquashop/internal/delivery/http/middleware"
	"aquashop/internal/delivery/http/router/handler"
	"aquashop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	InvoicingHandler *handler.InvoicingHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	invoicingHandler *handler.InvoicingHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		invoicingHandler: params.InvoicingHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/request-otp", r.authHandler.RequestOTP)
		authGroup.POST("/login-with-otp", r.authHandler.LoginWithOTP)
		// Soft verification for the frontend's own route guard.
		authGroup.GET("/verify-role", r.authHandler.VerifyRole)
	}

	// Admin invoicing routes, restricted to staff roles
	invoicingGroup := e.Group("/admin/invoicing")
	invoicingGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	invoicingGroup.Use(r.authMiddleware.RequireRoles(entity.RoleOwner, entity.RoleAdmin))
	{
		invoicingGroup.GET("/orders", r.invoicingHandler.ListOrders)
		invoicingGroup.POST("/order/confirm", r.invoicingHandler.ConfirmOrder)
	}
}
