// Package persistence selects the storage driver the rest of the service runs on.
package persistence

import (
	"log/slog"

	"pricemap/config"
	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"
	"pricemap/internal/infra/persistence/memory"
	"pricemap/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the transaction manager together with repositories that
// run outside any transaction.
type Result struct {
	fx.Out

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
}

// New opens the configured storage driver.
func New(params Params) (Result, error) {
	switch driver := params.Config.StorageDriver(); driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Result{
			TxManager: memory.NewTransactionManager(store),
			Repos:     store.Factory(),
		}, nil
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager: postgres.NewTransactionManager(db),
			Repos:     postgres.NewRepositoryFactory(db),
		}, nil
	default:
		return Result{}, errors.Errorf("unsupported storage driver %q", driver)
	}
}
