package infra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/config"
	"github.com/umalmyha/clientes/internal/repository"
	"github.com/umalmyha/clientes/migrations"
	"github.com/umalmyha/clientes/pkg/db/transactor"
)

// Store bundles cliente repository with transactor suitable for its backend
type Store struct {
	Repository repository.ClienteRepository
	Transactor transactor.Transactor
	closeFn    func()
}

// Close releases backend connections
func (s *Store) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// OpenStore connects to configured backend and prepares its schema
func OpenStore(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*Store, error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		return openPostgresStore(ctx, cfg.Postgres, logger)
	case config.StoreMongo:
		return openMongoStore(ctx, cfg.Mongo)
	case config.StoreMemory:
		logger.Warn("clientes are kept in memory and will be lost on restart")
		return &Store{
			Repository: repository.NewMemoryClienteRepository(),
			Transactor: transactor.NewNopTransactor(),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store.Backend)
	}
}

func openPostgresStore(ctx context.Context, cfg config.PostgresCfg, logger logrus.FieldLogger) (*Store, error) {
	if cfg.Migrate {
		if err := migrations.Up(cfg.MigrationURL(), logger); err != nil {
			return nil, err
		}
	}

	pool, err := Postgresql(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Store{
		Repository: repository.NewPostgresClienteRepository(transactor.NewPgxWithinTransactionExecutor(pool)),
		Transactor: transactor.NewPgxTransactor(pool),
		closeFn:    pool.Close,
	}, nil
}

func openMongoStore(ctx context.Context, cfg config.MongoCfg) (*Store, error) {
	client, err := Mongodb(ctx, cfg)
	if err != nil {
		return nil, err
	}

	idxCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := repository.EnsureMongoIndexes(idxCtx, client, cfg.Database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create mongodb indexes - %w", err)
	}

	return &Store{
		Repository: repository.NewMongoClienteRepository(client, cfg.Database),
		Transactor: transactor.NewNopTransactor(),
		closeFn: func() {
			_ = client.Disconnect(context.Background())
		},
	}, nil
}
