package main

import (
	"context"
	"io"
	"log/slog"

	"barista/config"
	"barista/internal/domain/repository"
	"barista/internal/domain/service"
	"barista/internal/infra/auth"
	logs "barista/internal/infra/log"
	"barista/internal/infra/persistence/kv"
	"barista/internal/infra/persistence/kvstore"
	"barista/internal/store"
	"barista/internal/usecase"
	"barista/internal/usecase/impl"

	"go.uber.org/fx"
)

type startParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Store  *store.Store
	Auth   usecase.AuthUsecase
	KV     repository.KV
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			start,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		kv.Open,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kvstore.NewUserRepository,
			kvstore.NewSessionRepository,
			kvstore.NewCardRepository,
			kvstore.NewProfilePhotoRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
		),
	)
}

// newPasswordHasher builds the bcrypt hasher, honoring a configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			store.New,
			impl.NewAuthService,
			impl.NewPaymentService,
		),
	)
}

func start(params startParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Auth.Initialize(ctx)
			// Prime the lazily loaded profile photo so consumers start warm.
			_ = params.Store.ProfilePhoto(ctx)

			state := params.Auth.State()
			params.Logger.Info("State core ready",
				"service", params.Config.Env.ServiceName,
				"authenticated", state.IsAuthenticated(),
				"catalogItems", len(params.Store.Catalog()),
			)

			return nil
		},
		OnStop: func(context.Context) error {
			if closer, ok := params.KV.(io.Closer); ok {
				return closer.Close()
			}

			return nil
		},
	})
}
