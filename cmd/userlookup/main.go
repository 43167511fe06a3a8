package main

import (
	"context"
	"log/slog"
	"os"

	"userlookup/config"
	"userlookup/internal/delivery"
	"userlookup/internal/delivery/api"
	"userlookup/internal/delivery/api/router/handler"
	"userlookup/internal/domain/repository"
	logs "userlookup/internal/infra/log"
	"userlookup/internal/infra/persistence/memory"
	"userlookup/internal/infra/persistence/mongodb"
	"userlookup/internal/infra/persistence/pgxstore"
	"userlookup/internal/infra/persistence/postgres"
	"userlookup/internal/usecase/impl"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage driver decides which providers exist, so config is read before the graph is built.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectStorage(cfg.Storage.Driver),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectStorage provides the pool, connection factory, repository and user
// use case of one storage driver.
func injectStorage(driver string) fx.Option {
	switch driver {
	case config.DriverGORM:
		return fx.Provide(
			postgres.New,
			postgres.NewConnectionFactory,
			postgres.NewUserRepository,
			impl.NewUserService[*gorm.DB],
		)
	case config.DriverPGX:
		return fx.Provide(
			pgxstore.New,
			newPGXConnectionFactory,
			pgxstore.NewUserRepository,
			impl.NewUserService[*pgxpool.Conn],
		)
	case config.DriverMongo:
		return fx.Provide(
			mongodb.New,
			mongodb.NewUsersCollection,
			mongodb.NewConnectionFactory,
			fx.Annotate(
				mongodb.NewUserRepository,
				fx.As(new(repository.UserRepository[*mongo.Session])),
			),
			impl.NewUserService[*mongo.Session],
		)
	default:
		return fx.Provide(
			memory.New,
			memory.NewConnectionFactory,
			memory.NewSeededUserRepository,
			impl.NewUserService[*memory.Conn],
		)
	}
}

func newPGXConnectionFactory(pool *pgxpool.Pool, cfg *config.Config) repository.ConnectionFactory[*pgxpool.Conn] {
	return pgxstore.NewConnectionFactory(pool, cfg.PGX.AcquireTimeout)
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
