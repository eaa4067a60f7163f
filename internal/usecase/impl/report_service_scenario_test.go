package impl

import (
	"testing"
	"time"

	"pricemap/internal/domain/constants"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportScenario_FirstReportCreatesShop(t *testing.T) {
	s := newScenario(t)
	userID := uuid.New()

	result := s.createShop(userID, productMilk, "100")

	assert.True(t, result.IsNewProduct)
	assert.False(t, result.Duplicate)
	assert.Equal(t, "Corner Market", result.ShopName)
	assert.Equal(t, "100.00", result.Price.StringFixed(2))
	assert.Equal(t, msgNewShopReported, result.Message)
	assert.NotEqual(t, uuid.Nil, result.ReportID)

	shop, err := s.shops.GetShop(s.ctx, result.ShopID)
	require.NoError(t, err)
	assert.True(t, shop.IsActive)
	assert.True(t, shop.Declarants.Contains(userID))
	assert.Equal(t, userID, shop.CreatedBy)

	average := s.average(productMilk)
	assert.Equal(t, "100.00", average.AvgPrice.StringFixed(2))
	assert.Equal(t, int64(1), average.ReportCount)

	require.Len(t, s.publisher.ofType(constants.EventShopCreated), 1)
	priceEvents := s.publisher.ofType(constants.EventPriceUpdated)
	require.Len(t, priceEvents, 1)
	assert.Equal(t, "100.00", priceEvents[0].Price)
}

func TestReportScenario_DefaultShopName(t *testing.T) {
	s := newScenario(t)

	result, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Shop at 25.0330,121.5654", result.ShopName)
}

func TestReportScenario_CreationRejectedNearExistingShop(t *testing.T) {
	s := newScenario(t)
	s.createShop(uuid.New(), productMilk, "100")

	_, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(99),
		Latitude:  shopLat + latOffset(20),
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopsAlreadyNearby)

	proximity, ok := err.(*domainerrors.ProximityError)
	require.True(t, ok)
	assert.Equal(t, 1, proximity.NearbyCount)
	assert.InDelta(t, 20, proximity.DistanceMeters, 0.5)
}

func TestReportScenario_CreationAllowedOutsideRadius(t *testing.T) {
	s := newScenario(t)
	s.createShop(uuid.New(), productMilk, "100")

	result, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(99),
		Latitude:  shopLat + latOffset(80),
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.True(t, result.IsNewShop)
}

func TestReportScenario_TooFarFromTargetShop(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")

	_, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(100),
		Latitude:  shopLat + latOffset(100),
		Longitude: shopLon,
		UserID:    uuid.New(),
		ShopID:    &created.ShopID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTooFarFromShop)

	reports, err := s.store.Factory().PriceReportRepo().FindReportsByShopAndProduct(s.ctx, created.ShopID, productMilk)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestReportScenario_SuspiciousLocation(t *testing.T) {
	s := newScenario(t)

	_, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(10),
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrSuspiciousLocation)
}

func TestReportScenario_CatalogGate(t *testing.T) {
	s := newScenario(t)

	_, err := s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: productInactive,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductInactive)

	_, err = s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
		ProductID: 404,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReportScenario_ConsensusAcrossReporters(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")

	second, err := s.report(created.ShopID, uuid.New(), productMilk, "102")
	require.NoError(t, err)
	assert.False(t, second.IsNewShop)
	assert.False(t, second.IsNewProduct)
	assert.Equal(t, "101.00", second.Price.StringFixed(2))
	assert.Equal(t, msgAggregatedPrefix+"Price based on 2 report(s) - more reports needed for accuracy", second.Message)

	third, err := s.report(created.ShopID, uuid.New(), productMilk, "150")
	require.NoError(t, err)
	assert.Equal(t, "101.00", third.Price.StringFixed(2))
	assert.Equal(t, msgAggregatedPrefix+"Price confirmed by 2 users", third.Message)

	assert.Equal(t, "101.00", s.shopPrice(created.ShopID, productMilk))
	assert.Equal(t, "117.33", s.average(productMilk).AvgPrice.StringFixed(2))

	// The outlier did not move the displayed price, so only two price events exist.
	assert.Len(t, s.publisher.ofType(constants.EventPriceUpdated), 2)
}

func TestReportScenario_SecondProductAtExistingShop(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")

	result, err := s.report(created.ShopID, uuid.New(), productBread, "35.5")
	require.NoError(t, err)
	assert.True(t, result.IsNewProduct)
	assert.Equal(t, msgProductAdded, result.Message)
	assert.Equal(t, "35.50", result.Price.StringFixed(2))

	products, err := s.shops.ListShopProducts(s.ctx, created.ShopID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, productMilk, products[0].ProductID)
	assert.Equal(t, productBread, products[1].ProductID)
}

func TestReportScenario_DuplicateSameDay(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")
	userID := uuid.New()

	_, err := s.report(created.ShopID, userID, productMilk, "102")
	require.NoError(t, err)

	s.clock.Advance(2 * time.Hour)
	duplicate, err := s.report(created.ShopID, userID, productMilk, "500")
	require.NoError(t, err)
	assert.True(t, duplicate.Duplicate)
	assert.Equal(t, uuid.Nil, duplicate.ReportID)
	assert.Equal(t, msgDuplicateReport, duplicate.Message)
	assert.Equal(t, "101.00", duplicate.Price.StringFixed(2))

	reports, err := s.store.Factory().PriceReportRepo().FindReportsByShopAndProduct(s.ctx, created.ShopID, productMilk)
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	s.clock.Advance(24 * time.Hour)
	nextDay, err := s.report(created.ShopID, userID, productMilk, "104")
	require.NoError(t, err)
	assert.False(t, nextDay.Duplicate)
}

func TestReportScenario_ReporterBecomesDeclarant(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")
	userID := uuid.New()

	_, err := s.report(created.ShopID, userID, productMilk, "101")
	require.NoError(t, err)

	declared, err := s.shops.ListDeclaredShops(s.ctx, userID)
	require.NoError(t, err)
	require.Len(t, declared, 1)
	assert.Equal(t, created.ShopID, declared[0].ID)
}

func TestReportScenario_ModifyWithinWindow(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")
	_, err := s.report(created.ShopID, uuid.New(), productMilk, "102")
	require.NoError(t, err)
	owner := uuid.New()
	outlier, err := s.report(created.ShopID, owner, productMilk, "150")
	require.NoError(t, err)

	s.clock.Advance(time.Hour)
	summary, err := s.reports.ModifyReport(s.ctx, outlier.ReportID, decimal.NewFromInt(104), owner)
	require.NoError(t, err)
	assert.Equal(t, "Price report modified from 150.00 to 104.00", summary.Message)
	assert.Equal(t, "104.00", summary.Price.StringFixed(2))
	assert.Equal(t, "102.00", summary.ShopPrice.StringFixed(2))
	assert.True(t, summary.CanModify)

	assert.Equal(t, "102.00", s.shopPrice(created.ShopID, productMilk))
	assert.Equal(t, "102.00", s.average(productMilk).AvgPrice.StringFixed(2))
}

func TestReportScenario_ModifyRejections(t *testing.T) {
	s := newScenario(t)
	owner := uuid.New()
	created := s.createShop(owner, productMilk, "100")

	_, err := s.reports.ModifyReport(s.ctx, created.ReportID, decimal.NewFromInt(90), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrReportOwnershipViolation)

	_, err = s.reports.ModifyReport(s.ctx, uuid.New(), decimal.NewFromInt(90), owner)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)

	_, err = s.reports.ModifyReport(s.ctx, created.ReportID, decimal.Zero, owner)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)

	// Exactly at the window edge the report is still editable.
	s.clock.Advance(24 * time.Hour)
	allowed, err := s.reports.CanModify(s.ctx, created.ReportID, owner)
	require.NoError(t, err)
	assert.True(t, allowed)

	s.clock.Advance(time.Second)
	allowed, err = s.reports.CanModify(s.ctx, created.ReportID, owner)
	require.NoError(t, err)
	assert.False(t, allowed)

	_, err = s.reports.ModifyReport(s.ctx, created.ReportID, decimal.NewFromInt(90), owner)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrModifyWindowExpired)
	windowErr, ok := err.(*domainerrors.WindowError)
	require.True(t, ok)
	assert.Equal(t, 24.0, windowErr.Fields()["windowHours"])

	assert.Equal(t, "100.00", s.shopPrice(created.ShopID, productMilk))
}

func TestReportScenario_UndoFallsBackToPlainAverage(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "100")
	_, err := s.report(created.ShopID, uuid.New(), productMilk, "102")
	require.NoError(t, err)
	owner := uuid.New()
	last, err := s.report(created.ShopID, owner, productMilk, "150")
	require.NoError(t, err)

	undone, err := s.reports.UndoReport(s.ctx, last.ReportID, owner)
	require.NoError(t, err)
	assert.True(t, undone)

	assert.Equal(t, "101.00", s.shopPrice(created.ShopID, productMilk))
	average := s.average(productMilk)
	assert.Equal(t, "101.00", average.AvgPrice.StringFixed(2))
	assert.Equal(t, int64(2), average.ReportCount)

	allowed, err := s.reports.CanModify(s.ctx, last.ReportID, owner)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestReportScenario_UndoLastReportKeepsPrice(t *testing.T) {
	s := newScenario(t)
	owner := uuid.New()
	created := s.createShop(owner, productMilk, "100")

	undone, err := s.reports.UndoReport(s.ctx, created.ReportID, owner)
	require.NoError(t, err)
	assert.True(t, undone)

	assert.Equal(t, "100.00", s.shopPrice(created.ShopID, productMilk))
	_, err = s.prices.GetProductAverage(s.ctx, productMilk)
	assert.ErrorIs(t, err, domainerrors.ErrPriceAverageNotFound)
}

func TestReportScenario_ListUserReports(t *testing.T) {
	s := newScenario(t)
	owner := uuid.New()
	created := s.createShop(owner, productMilk, "100")

	s.clock.Advance(time.Hour)
	_, err := s.report(created.ShopID, owner, productBread, "40")
	require.NoError(t, err)

	s.clock.Advance(48 * time.Hour)
	summaries, err := s.reports.ListUserReports(s.ctx, owner, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, productBread, summaries[0].ProductID)
	assert.Equal(t, productMilk, summaries[1].ProductID)
	assert.Equal(t, "Corner Market", summaries[1].ShopName)
	assert.Equal(t, "Reported on 2026-03-10", summaries[1].Message)
	assert.Equal(t, "100.00", summaries[1].ShopPrice.StringFixed(2))
	assert.False(t, summaries[0].CanModify)

	limited, err := s.reports.ListUserReports(s.ctx, owner, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	s.clock.Advance(31 * 24 * time.Hour)
	expired, err := s.reports.ListUserReports(s.ctx, owner, 0)
	require.NoError(t, err)
	assert.Empty(t, expired)
}

func TestReportScenario_ShopPriceMatchesAverageOnHalfCent(t *testing.T) {
	s := newScenario(t)
	created := s.createShop(uuid.New(), productMilk, "10.00")

	result, err := s.report(created.ShopID, uuid.New(), productMilk, "10.01")
	require.NoError(t, err)

	// 10.005 must round half-up in both places.
	assert.Equal(t, "10.01", result.Price.StringFixed(2))
	assert.Equal(t, "10.01", s.shopPrice(created.ShopID, productMilk))
	assert.Equal(t, "10.01", s.average(productMilk).AvgPrice.StringFixed(2))
}

func TestReportScenario_CallerSearchRadius(t *testing.T) {
	s := newScenario(t)
	s.createShop(uuid.New(), productMilk, "100")

	submit := func(radius float64) (*usecase.SubmitReportResult, error) {
		return s.reports.SubmitReport(s.ctx, &usecase.SubmitReportInput{
			ProductID:          productMilk,
			Price:              decimal.NewFromInt(99),
			Latitude:           shopLat + latOffset(80),
			Longitude:          shopLon,
			UserID:             uuid.New(),
			SearchRadiusMeters: radius,
		})
	}

	_, err := submit(100)
	require.Error(t, err)
	proximity, ok := err.(*domainerrors.ProximityError)
	require.True(t, ok)
	assert.Equal(t, 100.0, proximity.LimitMeters)

	// Radii under the reporting distance are raised to it, which leaves 80 m clear.
	result, err := submit(5)
	require.NoError(t, err)
	assert.True(t, result.IsNewShop)
}
