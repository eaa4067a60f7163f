package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/pricing"
	"pricemap/internal/domain/repository"
	"pricemap/internal/domain/service"
	"pricemap/internal/errors"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const maxCheapestLimit = 100

type priceService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	engine    *pricing.Engine
	events    *eventSink
	refresh   config.RefreshConfig
	logger    *slog.Logger
	now       func() time.Time
}

// PriceServiceParams holds dependencies for PriceService, injected by Fx.
type PriceServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Engine    *pricing.Engine
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPriceService is the constructor for priceService.
func NewPriceService(params PriceServiceParams) usecase.PriceUsecase {
	return &priceService{
		txManager: params.TxManager,
		repos:     params.Repos,
		engine:    params.Engine,
		events:    &eventSink{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		refresh:   params.Config.RefreshOrDefault(),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *priceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *priceService) GetProductAverage(ctx context.Context, productID int64) (*entity.PriceAverage, error) {
	if productID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productId must be positive")
	}

	average, err := srv.repos.PriceAverageRepo().FindAverageByProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrPriceAverageNotFound) {
			return nil, domainerrors.ErrPriceAverageNotFound
		}

		return nil, errors.Wrap(err, "failed to find price average")
	}

	return average, nil
}

func (srv *priceService) FindAveragesInRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*entity.PriceAverage, error) {
	if minPrice.IsNegative() || maxPrice.LessThan(minPrice) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price range is invalid")
	}

	averages, err := srv.repos.PriceAverageRepo().FindAveragesInRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find averages in range")
	}

	return averages, nil
}

func (srv *priceService) FindCheapest(ctx context.Context, limit int) ([]*entity.PriceAverage, error) {
	if limit <= 0 {
		limit = 10
	}
	limit = min(limit, maxCheapestLimit)

	averages, err := srv.repos.PriceAverageRepo().FindCheapest(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cheapest averages")
	}

	return averages, nil
}

type refreshOutcome int

const (
	refreshUpdated refreshOutcome = iota
	refreshUnchanged
	refreshFailed
)

// RefreshStalePrices reruns the engine over pairs priced before now-staleAfter.
// Pairs are processed in batches, each one in its own transaction. A pair
// without recent reports keeps its price but is stamped as evaluated, so the
// scan always moves forward.
func (srv *priceService) RefreshStalePrices(ctx context.Context, staleAfter time.Duration) (*usecase.RefreshResult, error) {
	if staleAfter <= 0 {
		staleAfter = srv.refresh.StaleAfter
	}
	cutoff := srv.now().UTC().Add(-staleAfter)

	pool, err := ants.NewPool(srv.refresh.Workers, ants.WithPanicHandler(func(p any) {
		srv.log(ctx).Error("Price refresh worker panicked", slog.Any("panic", p))
	}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refresh pool")
	}
	defer pool.Release()

	result := &usecase.RefreshResult{}
	seen := make(map[uuid.UUID]struct{})
	for {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		batch, err := srv.repos.ShopProductRepo().FindStaleShopProducts(ctx, cutoff, srv.refresh.BatchSize)
		if err != nil {
			return result, errors.Wrap(err, "failed to find stale shop products")
		}

		fresh := batch[:0:0]
		for _, shopProduct := range batch {
			if _, ok := seen[shopProduct.ID]; ok {
				continue
			}
			seen[shopProduct.ID] = struct{}{}
			fresh = append(fresh, shopProduct)
		}
		if len(fresh) == 0 {
			break
		}

		srv.refreshBatch(ctx, pool, fresh, result)
	}

	srv.log(ctx).Info("Stale prices refreshed",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (srv *priceService) refreshBatch(ctx context.Context, pool *ants.Pool, batch []*entity.ShopProduct, result *usecase.RefreshResult) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	record := func(outcome refreshOutcome) {
		mu.Lock()
		defer mu.Unlock()
		result.Scanned++
		switch outcome {
		case refreshUpdated:
			result.Updated++
		case refreshUnchanged:
			result.Unchanged++
		default:
			result.Failed++
		}
	}

	for _, shopProduct := range batch {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			record(srv.refreshOne(ctx, shopProduct))
		})
		if err != nil {
			wg.Done()
			srv.log(ctx).Warn("Failed to submit price refresh", slog.Any("shopProductID", shopProduct.ID), slog.Any("error", err))
			record(refreshFailed)
		}
	}
	wg.Wait()
}

func (srv *priceService) refreshOne(ctx context.Context, stale *entity.ShopProduct) refreshOutcome {
	now := srv.now().UTC()
	var (
		shop    *entity.Shop
		price   decimal.Decimal
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		history, err := repos.PriceReportRepo().FindReportsByShopAndProduct(ctx, stale.ShopID, stale.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to load price history")
		}

		price = stale.Price
		estimate := srv.engine.Recompute(ctx, srv.repos.PriceReportRepo(), history)
		if estimate.Method != pricing.MethodNone {
			price = estimate.Price
		}

		changed, err = repriceShopProduct(ctx, repos.ShopProductRepo(), stale.ShopID, stale.ProductID, price, now)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		shop, err = findShop(ctx, repos.ShopRepo(), stale.ShopID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh shop price",
			slog.Any("shopID", stale.ShopID),
			slog.Int64("productID", stale.ProductID),
			slog.Any("error", err),
		)

		return refreshFailed
	}
	if !changed {
		return refreshUnchanged
	}

	srv.events.priceUpdated(ctx, shop, stale.ProductID, price, uuid.Nil)

	return refreshUpdated
}
