// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"aquashop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RequestOTPInput defines the data required to request a one-time password.
type RequestOTPInput struct {
	Username string `json:"username" validate:"required"`
}

// OTPLoginInput defines the data required for an OTP login.
type OTPLoginInput struct {
	Username string `json:"username" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// AuthOutput returns the issued token and identity after a successful login.
type AuthOutput struct {
	Token    string      `json:"token"`
	Role     entity.Role `json:"role"`
	UserID   uuid.UUID   `json:"userId"`
	Username string      `json:"username"`
}

// RequestOTPOutput echoes the generated code. A production system would
// deliver the code out of band instead of returning it; delivery is mocked
// here.
type RequestOTPOutput struct {
	Message string `json:"message"`
	OTP     string `json:"otp"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RequestOTP(ctx context.Context, input *RequestOTPInput) (*RequestOTPOutput, error)
	LoginWithOTP(ctx context.Context, input *OTPLoginInput) (*AuthOutput, error)
}
