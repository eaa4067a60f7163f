package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pricemap/config"
	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/pricing"
	"pricemap/internal/domain/service"
	"pricemap/internal/infra/catalog"
	"pricemap/internal/infra/persistence/memory"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	productMilk     int64 = 1
	productBread    int64 = 2
	productInactive int64 = 3

	shopLat = 25.0330
	shopLon = 121.5654
)

// latOffset converts meters of northward displacement into degrees.
func latOffset(meters float64) float64 {
	return meters / 111_195
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			Provider: "static",
			Products: []config.CatalogProduct{
				{ID: productMilk, Name: "Milk", Active: true},
				{ID: productBread, Name: "Bread", Active: true},
				{ID: productInactive, Name: "Discontinued", Active: false},
			},
		},
		Refresh: &config.RefreshConfig{
			BatchSize: 2,
			Workers:   2,
		},
	}
}

func newTestVerifier(cfg *config.Config) *geo.Verifier {
	reporting := cfg.ReportingOrDefault()

	return geo.NewVerifier(geo.VerifierConfig{
		MaxReportDistanceMeters: reporting.MaxReportDistanceMeters,
		MaxGPSAccuracyMeters:    reporting.MaxGPSAccuracyMeters,
		AtShopDistanceMeters:    reporting.AtShopDistanceMeters,
	})
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.ShopEvent
}

func (p *recordingPublisher) PublishShopEvent(_ context.Context, event *service.ShopEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) ofType(eventType string) []*service.ShopEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	var matched []*service.ShopEvent
	for _, event := range p.events {
		if event.EventType == eventType {
			matched = append(matched, event)
		}
	}

	return matched
}

// scenario wires every service against one in-memory store and a shared clock.
type scenario struct {
	t         *testing.T
	ctx       context.Context
	clock     *testClock
	store     *memory.Store
	publisher *recordingPublisher
	reports   *reportService
	shops     *shopService
	prices    *priceService
	audit     *auditService
}

func newScenario(t *testing.T) *scenario {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	store := memory.NewStore(memory.WithClock(clock.Now))
	txManager := memory.NewTransactionManager(store)
	repos := store.Factory()
	cfg := newTestConfig()
	logger := newDiscardLogger()
	verifier := newTestVerifier(cfg)
	engine := pricing.NewEngine(pricing.Config{}, logger, pricing.WithClock(clock.Now))
	publisher := &recordingPublisher{}

	reports := NewReportService(ReportServiceParams{
		TxManager: txManager,
		Repos:     repos,
		Catalog:   catalog.NewStaticCatalog(cfg.Catalog.Products),
		Publisher: publisher,
		Verifier:  verifier,
		Engine:    engine,
		Config:    cfg,
		Logger:    logger,
	}).(*reportService)
	reports.now = clock.Now
	reports.resolver.now = clock.Now
	reports.events.now = clock.Now

	shops := NewShopService(ShopServiceParams{
		TxManager: txManager,
		Repos:     repos,
		Verifier:  verifier,
		Config:    cfg,
		Logger:    logger,
	}).(*shopService)
	shops.now = clock.Now
	shops.resolver.now = clock.Now

	prices := NewPriceService(PriceServiceParams{
		TxManager: txManager,
		Repos:     repos,
		Engine:    engine,
		Publisher: publisher,
		Config:    cfg,
		Logger:    logger,
	}).(*priceService)
	prices.now = clock.Now
	prices.events.now = clock.Now

	audit := NewAuditService(AuditServiceParams{
		TxManager: txManager,
		Config:    cfg,
		Logger:    logger,
	}).(*auditService)

	return &scenario{
		t:         t,
		ctx:       context.Background(),
		clock:     clock,
		store:     store,
		publisher: publisher,
		reports:   reports,
		shops:     shops,
		prices:    prices,
		audit:     audit,
	}
}

// createShop submits a first report without a target shop.
func (s *scenario) createShop(userID uuid.UUID, productID int64, price string) *usecase.SubmitReportResult {
	s.t.Helper()

	result, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productID,
		Price:     decimal.RequireFromString(price),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    userID,
		ShopName:  "Corner Market",
	})
	require.NoError(s.t, err)
	require.True(s.t, result.IsNewShop)

	return result
}

// report submits a report against shopID from a few meters away.
func (s *scenario) report(shopID uuid.UUID, userID uuid.UUID, productID int64, price string) (*usecase.SubmitReportResult, error) {
	return s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productID,
		Price:     decimal.RequireFromString(price),
		Latitude:  shopLat + latOffset(5),
		Longitude: shopLon,
		UserID:    userID,
		ShopID:    &shopID,
	})
}

// seedShop stores a shop and its location directly, bypassing the resolver.
func (s *scenario) seedShop(lat, lon float64) *entity.Shop {
	s.t.Helper()

	creator := uuid.New()
	shop := &entity.Shop{
		ID:         uuid.New(),
		Name:       "Seeded",
		Latitude:   lat,
		Longitude:  lon,
		Status:     entity.ShopStatusUnverified,
		IsActive:   true,
		Declarants: entity.NewDeclarantSet(creator),
		CreatedBy:  creator,
	}
	repos := s.store.Factory()
	require.NoError(s.t, repos.ShopRepo().CreateShop(s.ctx, shop))
	require.NoError(s.t, repos.LocationRepo().UpsertLocation(s.ctx, &entity.ShopLocation{
		ShopID: shop.ID,
		Point:  shop.Point(),
	}))

	return shop
}

func (s *scenario) shopPrice(shopID uuid.UUID, productID int64) string {
	s.t.Helper()

	shopProduct, err := s.store.Factory().ShopProductRepo().FindShopProduct(s.ctx, shopID, productID)
	require.NoError(s.t, err)

	return shopProduct.Price.StringFixed(2)
}

func (s *scenario) average(productID int64) *entity.PriceAverage {
	s.t.Helper()

	average, err := s.prices.GetProductAverage(s.ctx, productID)
	require.NoError(s.t, err)

	return average
}
