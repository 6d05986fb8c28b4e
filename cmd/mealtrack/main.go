package main

import (
	"context"
	"log/slog"

	"mealtrack/config"
	"mealtrack/internal/delivery"
	"mealtrack/internal/delivery/api"
	"mealtrack/internal/delivery/api/middleware"
	"mealtrack/internal/delivery/api/router/handler"
	"mealtrack/internal/infra/auth"
	logs "mealtrack/internal/infra/log"
	"mealtrack/internal/infra/persistence/postgres"
	"mealtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer begins serving once every OnStart hook (database ping, migrations) has succeeded.
func startServer(params startServerParams) {
	serveCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(serveCtx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
