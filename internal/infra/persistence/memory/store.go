// Package memory is an in-process implementation of the persistence layer.
// It backs local development and the usecase scenario tests; it has no
// durability and serialises every transaction.
package memory

import (
	"maps"
	"sync"
	"time"

	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"

	"github.com/google/uuid"
)

type shopProductKey struct {
	shopID    uuid.UUID
	productID int64
}

// state holds every table. A transaction snapshots it and restores the
// snapshot on rollback.
type state struct {
	shops        map[uuid.UUID]*entity.Shop
	locations    map[uuid.UUID]*entity.ShopLocation
	shopProducts map[shopProductKey]*entity.ShopProduct
	reports      map[uuid.UUID]*entity.PriceReport
	averages     map[int64]*entity.PriceAverage
}

func newState() *state {
	return &state{
		shops:        make(map[uuid.UUID]*entity.Shop),
		locations:    make(map[uuid.UUID]*entity.ShopLocation),
		shopProducts: make(map[shopProductKey]*entity.ShopProduct),
		reports:      make(map[uuid.UUID]*entity.PriceReport),
		averages:     make(map[int64]*entity.PriceAverage),
	}
}

// clone copies the maps. Stored values are never mutated in place, so a
// shallow copy of each map is a consistent snapshot.
func (s *state) clone() *state {
	return &state{
		shops:        maps.Clone(s.shops),
		locations:    maps.Clone(s.locations),
		shopProducts: maps.Clone(s.shopProducts),
		reports:      maps.Clone(s.reports),
		averages:     maps.Clone(s.averages),
	}
}

// Store is the shared in-memory database.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data *state
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data: newState(),
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Factory returns repositories that run outside any transaction.
func (s *Store) Factory() repository.RepositoryFactory {
	return &repositoryFactory{store: s}
}

func (s *Store) read(fn func(*state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) write(fn func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) ShopRepo() repository.ShopRepository {
	return &shopRepository{store: f.store}
}

func (f *repositoryFactory) LocationRepo() repository.LocationRepository {
	return &locationRepository{store: f.store}
}

func (f *repositoryFactory) ShopProductRepo() repository.ShopProductRepository {
	return &shopProductRepository{store: f.store}
}

func (f *repositoryFactory) PriceReportRepo() repository.PriceReportRepository {
	return &priceReportRepository{store: f.store}
}

func (f *repositoryFactory) PriceAverageRepo() repository.PriceAverageRepository {
	return &priceAverageRepository{store: f.store}
}

func cloneShop(shop *entity.Shop) *entity.Shop {
	if shop == nil {
		return nil
	}
	cloned := *shop
	cloned.Declarants = entity.NewDeclarantSet(shop.Declarants.IDs()...)
	if shop.VerifiedBy != nil {
		verifiedBy := *shop.VerifiedBy
		cloned.VerifiedBy = &verifiedBy
	}
	if shop.VerifiedAt != nil {
		verifiedAt := *shop.VerifiedAt
		cloned.VerifiedAt = &verifiedAt
	}

	return &cloned
}

func cloneReport(report *entity.PriceReport) *entity.PriceReport {
	if report == nil {
		return nil
	}
	cloned := *report
	if report.GPSAccuracy != nil {
		accuracy := *report.GPSAccuracy
		cloned.GPSAccuracy = &accuracy
	}

	return &cloned
}

func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	cloned := *v

	return &cloned
}
