package memory

import (
	"context"

	"pricemap/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a manager that runs one transaction at a
// time against store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with exclusive write access. A returned error or a panic
// restores the state seen before fn started.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	var snapshot *state
	tm.store.read(func(s *state) {
		snapshot = s.clone()
	})

	rollback := func() {
		tm.store.mu.Lock()
		tm.store.data = snapshot
		tm.store.mu.Unlock()
	}

	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err := fn(tm.store.Factory()); err != nil {
		rollback()

		return err
	}

	return nil
}
