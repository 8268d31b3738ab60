package main

import (
	"context"
	"log/slog"
	"os"

	"aquashop/config"
	"aquashop/internal/delivery"
	"aquashop/internal/delivery/http"
	"aquashop/internal/delivery/http/middleware"
	"aquashop/internal/delivery/http/router/handler"
	"aquashop/internal/domain/repository"
	"aquashop/internal/domain/service"
	"aquashop/internal/infra/auth"
	"aquashop/internal/infra/invoice"
	logs "aquashop/internal/infra/log"
	"aquashop/internal/infra/persistence/memory"
	"aquashop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDemoData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewUserRepository,
			memory.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			invoice.NewPDFRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewInvoicingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewInvoicingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDemoData loads the demo users and pending orders at startup so the
// storefront is usable without a checkout flow feeding it.
func seedDemoData(
	ctx context.Context,
	cfg *config.Config,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) error {
	if cfg.Seed == nil || !cfg.Seed.DemoData {
		return nil
	}

	return memory.SeedDemoData(ctx, userRepo, orderRepo, hasher, logger)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
