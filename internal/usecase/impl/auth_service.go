// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"aquashop/config"
	deliverycontext "aquashop/internal/delivery/context"
	"aquashop/internal/domain/entity"
	domainerrors "aquashop/internal/domain/errors"
	"aquashop/internal/domain/repository"
	"aquashop/internal/domain/service"
	"aquashop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpGenerator service.OTPGenerator
	otpTTL       time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPGenerator service.OTPGenerator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := 5 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpGenerator: params.OTPGenerator,
		otpTTL:       otpTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account. The role is always CUSTOMER;
// staff accounts are provisioned, never self-registered.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username))

	if _, err := srv.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Role:         entity.RoleCustomer,
		PasswordHash: passwordHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login authenticates a username/password pair and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// An empty hash means an OTP-only account; password login is not valid for it.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueToken(ctx, user)
}

// RequestOTP generates a fresh one-time password for the user, replacing
// any outstanding code. Delivery is mocked by echoing the code in the
// response.
func (srv *authService) RequestOTP(ctx context.Context, input *usecase.RequestOTPInput) (*usecase.RequestOTPOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("otp requested for unknown user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	otp, err := srv.otpGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	user.SetOTP(otp, time.Now().Add(srv.otpTTL))
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store otp")
	}

	srv.log(ctx).Info("Issued OTP",
		slog.String("username", user.Username),
		slog.Time("expires_at", *user.OTPExpiresAt),
	)

	return &usecase.RequestOTPOutput{
		Message: "OTP sent successfully to " + user.Username + " (mock).",
		OTP:     otp,
	}, nil
}

// LoginWithOTP authenticates a username/OTP pair. The code is single-use:
// it is cleared on first successful use and on expiry detection.
func (srv *authService) LoginWithOTP(ctx context.Context, input *usecase.OTPLoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrOTPNotRequested.WrapMessage("unknown username")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasOTP() {
		return nil, domainerrors.ErrOTPNotRequested.WrapMessage("no outstanding otp")
	}

	if user.OTP != input.OTP {
		return nil, domainerrors.ErrInvalidOTP.WrapMessage("otp mismatch")
	}

	if user.OTPExpiresAt.Before(time.Now()) {
		// Consume the expired code so a later retry starts clean.
		user.ClearOTP()
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to clear expired otp")
		}

		return nil, domainerrors.ErrOTPExpired.WrapMessage("otp past its expiry")
	}

	user.ClearOTP()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to consume otp")
	}

	srv.log(ctx).Info("Login via OTP", slog.String("username", user.Username))

	return srv.issueToken(ctx, user)
}

func (srv *authService) issueToken(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		Token:    token,
		Role:     user.Role,
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
