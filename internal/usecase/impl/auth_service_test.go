package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"aquashop/config"
	"aquashop/internal/domain/entity"
	domainerrors "aquashop/internal/domain/errors"
	"aquashop/internal/domain/repository"
	"aquashop/internal/infra/auth"
	"aquashop/internal/infra/persistence/memory"
	"aquashop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo repository.UserRepository
}

func createTestAuthService(t *testing.T, otpTTL time.Duration) authServiceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:     4,
		AccessTokenTTL: time.Hour,
		OTPTTL:         otpTTL,
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository()

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		OTPGenerator: auth.NewOTPGenerator(),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	registered, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "new@aqua.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, registered.User)
	assert.Equal(t, entity.RoleCustomer, registered.User.Role)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "new@aqua.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, entity.RoleCustomer, output.Role)
	assert.Equal(t, "new@aqua.com", output.Username)
	assert.Equal(t, registered.User.ID, output.UserID)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "dup@aqua.com", Password: "password123"})
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, &usecase.RegisterInput{Username: "dup@aqua.com", Password: "other456"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "user@aqua.com", Password: "password123"})
	require.NoError(t, err)

	// Wrong password
	_, err = fx.service.Login(ctx, &usecase.LoginInput{Username: "user@aqua.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	// Unknown user
	_, err = fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost@aqua.com", Password: "password123"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginPasswordlessAccount(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	// OTP-only account has no password hash.
	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
		Username: "test@otp.com",
		Role:     entity.RoleCustomer,
	}))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "test@otp.com", Password: ""})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RequestOTPUnknownUser(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)

	_, err := fx.service.RequestOTP(context.Background(), &usecase.RequestOTPInput{Username: "ghost@aqua.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_OTPLoginSingleUse(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
		Username: "test@otp.com",
		Role:     entity.RoleCustomer,
	}))

	requested, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Username: "test@otp.com"})
	require.NoError(t, err)
	require.Len(t, requested.OTP, 6)

	output, err := fx.service.LoginWithOTP(ctx, &usecase.OTPLoginInput{
		Username: "test@otp.com",
		OTP:      requested.OTP,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)

	// The code was consumed on first use.
	_, err = fx.service.LoginWithOTP(ctx, &usecase.OTPLoginInput{
		Username: "test@otp.com",
		OTP:      requested.OTP,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrOTPNotRequested))
}

func TestAuthService_OTPLoginMismatch(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
		Username: "test@otp.com",
		Role:     entity.RoleCustomer,
	}))

	requested, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Username: "test@otp.com"})
	require.NoError(t, err)

	wrong := "000000"
	if requested.OTP == wrong {
		wrong = "000001"
	}

	_, err = fx.service.LoginWithOTP(ctx, &usecase.OTPLoginInput{Username: "test@otp.com", OTP: wrong})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))

	// A mismatch does not consume the outstanding code.
	_, err = fx.service.LoginWithOTP(ctx, &usecase.OTPLoginInput{Username: "test@otp.com", OTP: requested.OTP})
	assert.NoError(t, err)
}

func TestAuthService_OTPLoginExpired(t *testing.T) {
	// Negative TTL makes every issued code already expired.
	fx := createTestAuthService(t, -time.Minute)
	ctx := context.Background()

	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
		Username: "test@otp.com",
		Role:     entity.RoleCustomer,
	}))

	requested, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Username: "test@otp.com"})
	require.NoError(t, err)

	_, err = fx.service.LoginWithOTP(ctx, &usecase.OTPLoginInput{Username: "test@otp.com", OTP: requested.OTP})
	assert.True(t, errors.Is(err, domainerrors.ErrOTPExpired))

	// The expired code was cleared on the failed attempt.
	stored, err := fx.userRepo.FindByUsername(ctx, "test@otp.com")
	require.NoError(t, err)
	assert.False(t, stored.HasOTP())
}

func TestAuthService_RequestOTPReplacesOutstandingCode(t *testing.T) {
	fx := createTestAuthService(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, fx.userRepo.Create(ctx, &entity.User{
		Username: "test@otp.com",
		Role:     entity.RoleCustomer,
	}))

	first, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Username: "test@otp.com"})
	require.NoError(t, err)
	second, err := fx.service.RequestOTP(ctx, &usecase.RequestOTPInput{Username: "test@otp.com"})
	require.NoError(t, err)

	stored, err := fx.userRepo.FindByUsername(ctx, "test@otp.com")
	require.NoError(t, err)
	assert.Equal(t, second.OTP, stored.OTP)

	if first.OTP != second.OTP {
		_, err = fx.service.LoginWithOTP(ctx, &usecase.OTPLoginInput{Username: "test@otp.com", OTP: first.OTP})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
	}
}
