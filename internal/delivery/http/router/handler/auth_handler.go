// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"aquashop/internal/delivery/http/middleware"
	"aquashop/internal/delivery/http/response"
	"aquashop/internal/domain/service"
	"aquashop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication-related handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Register handles the customer registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Username and password are required.")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Registration successful. Please log in.")
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Username and password are required.")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RequestOTP handles the one-time password request.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var input *usecase.RequestOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Username is required.")
	}

	output, err := h.uc.RequestOTP(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "OTP generated")
}

// LoginWithOTP handles the OTP login request.
func (h *AuthHandler) LoginWithOTP(c echo.Context) error {
	var input *usecase.OTPLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP login input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Username and OTP are required.")
	}

	output, err := h.uc.LoginWithOTP(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful via OTP")
}

// verifyRoleResponse is the soft-verification payload consumed by the
// frontend's own route guard.
type verifyRoleResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Role            string `json:"role,omitempty"`
	UserID          string `json:"userId,omitempty"`
	Username        string `json:"username,omitempty"`
	Message         string `json:"message,omitempty"`
}

// VerifyRole reports whether the presented token is currently valid and
// which role it carries, without enforcing any particular role. It never
// hard-fails: an absent or invalid token yields isAuthenticated=false.
func (h *AuthHandler) VerifyRole(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, verifyRoleResponse{
			IsAuthenticated: false,
			Message:         "No token provided.",
		})
	}

	claims, err := h.tokenSvc.Validate(token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, verifyRoleResponse{
			IsAuthenticated: false,
			Message:         "Invalid token.",
		})
	}

	return c.JSON(http.StatusOK, verifyRoleResponse{
		IsAuthenticated: true,
		Role:            claims.Role.String(),
		UserID:          claims.UserID.String(),
		Username:        claims.Username,
	})
}
