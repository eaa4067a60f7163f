package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/pricing"
	"pricemap/internal/domain/repository"
	"pricemap/internal/domain/service"
	"pricemap/internal/errors"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	msgNewShopReported  = "New shop created and price reported successfully"
	msgProductAdded     = "Product added to existing shop"
	msgAggregatedPrefix = "Price updated using intelligent aggregation - "
	msgDuplicateReport  = "You already reported this product at this shop today"
	reportDateLayout    = "2006-01-02"
)

type reportService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	catalog   service.ProductCatalog
	engine    *pricing.Engine
	resolver  *shopResolver
	events    *eventSink
	reporting config.ReportingConfig
	logger    *slog.Logger
	now       func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Catalog   service.ProductCatalog
	Publisher service.EventPublisher
	Verifier  *geo.Verifier
	Engine    *pricing.Engine
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	reporting := params.Config.ReportingOrDefault()

	return &reportService{
		txManager: params.TxManager,
		repos:     params.Repos,
		catalog:   params.Catalog,
		engine:    params.Engine,
		resolver:  newShopResolver(params.Verifier, reporting),
		events:    &eventSink{publisher: params.Publisher, logger: params.Logger, now: time.Now},
		reporting: reporting,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReport validates the input, checks the product against the catalog and
// then, in one transaction, resolves the shop, reprices the pair, stores the
// report and refreshes the product average.
func (srv *reportService) SubmitReport(ctx context.Context, input *usecase.SubmitReportInput) (*usecase.SubmitReportResult, error) {
	price, err := validateSubmitInput(input)
	if err != nil {
		return nil, err
	}
	if err := srv.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	duplicate := srv.isDuplicate(ctx, input, now)

	var (
		result       *usecase.SubmitReportResult
		shop         *entity.Shop
		priceChanged bool
	)
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		resolved, err := srv.resolver.ResolveOrCreate(ctx, repos, &resolveInput{
			ShopID:      input.ShopID,
			ShopName:    input.ShopName,
			Latitude:    input.Latitude,
			Longitude:   input.Longitude,
			GPSAccuracy: input.GPSAccuracy,
			UserID:      input.UserID,

			SearchRadiusMeters: input.SearchRadiusMeters,
		})
		if err != nil {
			return err
		}
		shop = resolved.Shop

		if duplicate {
			result, err = srv.duplicateResult(ctx, repos.ShopProductRepo(), input, resolved)

			return err
		}

		result, priceChanged, err = srv.recordReport(ctx, repos, input, price, resolved, now)

		return err
	})
	if err != nil {
		srv.log(ctx).Info("Price report rejected",
			slog.Int64("productID", input.ProductID),
			slog.Any("userID", input.UserID),
			slog.Any("error", err),
		)

		return nil, err
	}

	if result.IsNewShop {
		srv.events.shopCreated(ctx, shop, input.UserID)
	}
	if priceChanged {
		srv.events.priceUpdated(ctx, shop, input.ProductID, result.Price, input.UserID)
	}

	srv.log(ctx).Debug("Price report stored",
		slog.Any("reportID", result.ReportID),
		slog.Any("shopID", result.ShopID),
		slog.Bool("newShop", result.IsNewShop),
		slog.Bool("duplicate", result.Duplicate),
	)

	return result, nil
}

func (srv *reportService) recordReport(
	ctx context.Context,
	repos repository.RepositoryFactory,
	input *usecase.SubmitReportInput,
	price decimal.Decimal,
	resolved *resolution,
	now time.Time,
) (*usecase.SubmitReportResult, bool, error) {
	shop := resolved.Shop
	reportRepo := repos.PriceReportRepo()
	shopProductRepo := repos.ShopProductRepo()

	current, err := shopProductRepo.FindShopProduct(ctx, shop.ID, input.ProductID)
	isNewProduct := errors.Is(err, repository.ErrShopProductNotFound)
	if err != nil && !isNewProduct {
		return nil, false, errors.Wrap(err, "failed to find shop product")
	}

	displayed := price
	changed := true
	var message string
	switch {
	case isNewProduct && resolved.IsNew:
		message = msgNewShopReported
	case isNewProduct:
		message = msgProductAdded
	default:
		history, err := reportRepo.FindReportsByShopAndProduct(ctx, shop.ID, input.ProductID)
		if err != nil {
			return nil, false, errors.Wrap(err, "failed to load price history")
		}
		estimate := srv.engine.ComputePrice(ctx, srv.repos.PriceReportRepo(), history, price, input.UserID)
		displayed = estimate.Price
		changed = !displayed.Equal(current.Price)

		observed := append(srv.engine.FilterRecent(history), &entity.PriceReport{Price: price, ReportedBy: input.UserID})
		message = msgAggregatedPrefix + srv.engine.RecommendationMessage(observed)
	}

	if err := shopProductRepo.UpsertShopProduct(ctx, &entity.ShopProduct{
		ShopID:      shop.ID,
		ProductID:   input.ProductID,
		Price:       displayed,
		IsAvailable: true,
		PricedAt:    now,
	}); err != nil {
		return nil, false, errors.Wrap(err, "failed to upsert shop product")
	}

	report := &entity.PriceReport{
		ID:             uuid.New(),
		ProductID:      input.ProductID,
		ShopID:         shop.ID,
		ReportedBy:     input.UserID,
		Price:          price,
		GPSAccuracy:    input.GPSAccuracy,
		DistanceMeters: resolved.DistanceMeters,
		ReportedAt:     now,
		ReportDate:     entity.ReportDay(now),
	}
	if err := reportRepo.CreateReport(ctx, report); err != nil {
		return nil, false, errors.Wrap(err, "failed to create price report")
	}

	if !shop.Declarants.Contains(input.UserID) {
		err := repos.ShopRepo().AddDeclarant(ctx, shop.ID, input.UserID)
		if err != nil && !errors.Is(err, repository.ErrDeclarantExists) {
			return nil, false, errors.Wrap(err, "failed to add declarant")
		}
		shop.Declarants.Add(input.UserID)
	}

	if err := refreshAverage(ctx, repos, input.ProductID, now); err != nil {
		return nil, false, err
	}

	return &usecase.SubmitReportResult{
		ReportID:       report.ID,
		ShopID:         shop.ID,
		ShopName:       shop.Name,
		Latitude:       shop.Latitude,
		Longitude:      shop.Longitude,
		ProductID:      input.ProductID,
		Price:          displayed,
		IsNewShop:      resolved.IsNew,
		IsNewProduct:   isNewProduct,
		DistanceMeters: resolved.DistanceMeters,
		Message:        message,
	}, changed, nil
}

// isDuplicate runs the daily duplicate check outside the write transaction.
// Only reports against an existing shop can be duplicates. A failing check
// counts as "not a duplicate".
func (srv *reportService) isDuplicate(ctx context.Context, input *usecase.SubmitReportInput, now time.Time) bool {
	if input.ShopID == nil {
		return false
	}

	reported, err := srv.repos.PriceReportRepo().HasUserReportedOn(ctx, input.ProductID, *input.ShopID, input.UserID, now)
	if err != nil {
		srv.log(ctx).Warn("Duplicate report check failed, accepting report",
			slog.Int64("productID", input.ProductID),
			slog.Any("shopID", *input.ShopID),
			slog.Any("error", err),
		)

		return false
	}

	return reported
}

func (srv *reportService) duplicateResult(
	ctx context.Context,
	shopProductRepo repository.ShopProductRepository,
	input *usecase.SubmitReportInput,
	resolved *resolution,
) (*usecase.SubmitReportResult, error) {
	result := &usecase.SubmitReportResult{
		ShopID:         resolved.Shop.ID,
		ShopName:       resolved.Shop.Name,
		Latitude:       resolved.Shop.Latitude,
		Longitude:      resolved.Shop.Longitude,
		ProductID:      input.ProductID,
		Duplicate:      true,
		DistanceMeters: resolved.DistanceMeters,
		Message:        msgDuplicateReport,
	}

	current, err := shopProductRepo.FindShopProduct(ctx, resolved.Shop.ID, input.ProductID)
	switch {
	case err == nil:
		result.Price = current.Price
	case !errors.Is(err, repository.ErrShopProductNotFound):
		return nil, errors.Wrap(err, "failed to find shop product")
	}

	return result, nil
}

// checkProduct gates creation on the catalog. Any failure is fatal.
func (srv *reportService) checkProduct(ctx context.Context, productID int64) error {
	product, err := srv.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) || errors.Is(err, domainerrors.ErrCatalogUnavailable) {
			return err
		}
		srv.log(ctx).Error("Product catalog lookup failed", slog.Int64("productID", productID), slog.Any("error", err))

		return domainerrors.ErrCatalogUnavailable.WrapMessage(err.Error())
	}
	if !product.IsActive {
		return domainerrors.ErrProductInactive
	}

	return nil
}

// ModifyReport overwrites the price of a report and reprices the pair, treating
// the new price as the incoming observation.
func (srv *reportService) ModifyReport(ctx context.Context, reportID uuid.UUID, newPrice decimal.Decimal, userID uuid.UUID) (*usecase.ReportSummary, error) {
	price := newPrice.Round(2)
	if !price.IsPositive() {
		return nil, domainerrors.ErrInvalidPrice
	}

	now := srv.now().UTC()
	var (
		summary *usecase.ReportSummary
		shop    *entity.Shop
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		reportRepo := repos.PriceReportRepo()
		report, err := srv.findOwnedReport(ctx, reportRepo, reportID, userID, now)
		if err != nil {
			return err
		}
		oldPrice := report.Price

		if err := reportRepo.UpdateReportPrice(ctx, report.ID, price); err != nil {
			return errors.Wrap(err, "failed to update report price")
		}

		history, err := reportRepo.FindReportsByShopAndProduct(ctx, report.ShopID, report.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to load price history")
		}
		others := make([]*entity.PriceReport, 0, len(history))
		for _, r := range history {
			if r.ID != report.ID {
				others = append(others, r)
			}
		}
		estimate := srv.engine.ComputePrice(ctx, srv.repos.PriceReportRepo(), others, price, userID)

		changed, err = repriceShopProduct(ctx, repos.ShopProductRepo(), report.ShopID, report.ProductID, estimate.Price, now)
		if err != nil {
			return err
		}
		if err := refreshAverage(ctx, repos, report.ProductID, now); err != nil {
			return err
		}

		shop, err = findShop(ctx, repos.ShopRepo(), report.ShopID)
		if err != nil {
			return err
		}

		summary = &usecase.ReportSummary{
			ReportID:   report.ID,
			ShopID:     shop.ID,
			ShopName:   shop.Name,
			Latitude:   shop.Latitude,
			Longitude:  shop.Longitude,
			ProductID:  report.ProductID,
			Price:      price,
			ShopPrice:  estimate.Price,
			ReportedAt: report.ReportedAt,
			Message:    fmt.Sprintf("Price report modified from %s to %s", oldPrice.StringFixed(2), price.StringFixed(2)),
			CanModify:  true,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.events.priceUpdated(ctx, shop, summary.ProductID, summary.ShopPrice, userID)
	}

	return summary, nil
}

// UndoReport deletes a report. The pair falls back to the plain mean of the
// remaining reports, or keeps its price when none remain.
func (srv *reportService) UndoReport(ctx context.Context, reportID, userID uuid.UUID) (bool, error) {
	now := srv.now().UTC()
	var (
		shop      *entity.Shop
		productID int64
		price     decimal.Decimal
		changed   bool
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		reportRepo := repos.PriceReportRepo()
		report, err := srv.findOwnedReport(ctx, reportRepo, reportID, userID, now)
		if err != nil {
			return err
		}
		productID = report.ProductID

		if err := reportRepo.DeleteReport(ctx, report.ID); err != nil {
			return errors.Wrap(err, "failed to delete report")
		}

		remaining, err := reportRepo.FindReportsByShopAndProduct(ctx, report.ShopID, report.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to load price history")
		}
		if len(remaining) > 0 {
			price = pricing.PlainAverage(remaining)
			changed, err = repriceShopProduct(ctx, repos.ShopProductRepo(), report.ShopID, report.ProductID, price, now)
			if err != nil {
				return err
			}
		}

		if err := refreshAverage(ctx, repos, report.ProductID, now); err != nil {
			return err
		}

		shop, err = findShop(ctx, repos.ShopRepo(), report.ShopID)

		return err
	})
	if err != nil {
		return false, err
	}

	if changed {
		srv.events.priceUpdated(ctx, shop, productID, price, userID)
	}

	return true, nil
}

// ListUserReports returns the caller's reports of the last HistoryDays, newest first.
func (srv *reportService) ListUserReports(ctx context.Context, userID uuid.UUID, limit int) ([]*usecase.ReportSummary, error) {
	switch {
	case limit <= 0:
		limit = srv.reporting.HistoryLimit
	case limit > srv.reporting.MaxHistoryLimit:
		limit = srv.reporting.MaxHistoryLimit
	}

	now := srv.now().UTC()
	since := now.AddDate(0, 0, -srv.reporting.HistoryDays)
	reports, err := srv.repos.PriceReportRepo().FindRecentReportsByUser(ctx, userID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user reports")
	}
	if len(reports) > limit {
		reports = reports[:limit]
	}

	shops := make(map[uuid.UUID]*entity.Shop)
	summaries := make([]*usecase.ReportSummary, 0, len(reports))
	for _, report := range reports {
		summary := &usecase.ReportSummary{
			ReportID:   report.ID,
			ShopID:     report.ShopID,
			ProductID:  report.ProductID,
			Price:      report.Price,
			ReportedAt: report.ReportedAt,
			Message:    "Reported on " + report.ReportedAt.UTC().Format(reportDateLayout),
			CanModify:  !srv.windowClosed(report, now),
		}

		shop, ok := shops[report.ShopID]
		if !ok {
			shop, err = srv.repos.ShopRepo().FindShopByID(ctx, report.ShopID)
			if err != nil && !errors.Is(err, repository.ErrShopNotFound) {
				return nil, errors.Wrap(err, "failed to find shop")
			}
			shops[report.ShopID] = shop
		}
		if shop != nil {
			summary.ShopName = shop.Name
			summary.Latitude = shop.Latitude
			summary.Longitude = shop.Longitude
		}

		current, err := srv.repos.ShopProductRepo().FindShopProduct(ctx, report.ShopID, report.ProductID)
		switch {
		case err == nil:
			summary.ShopPrice = current.Price
		case !errors.Is(err, repository.ErrShopProductNotFound):
			return nil, errors.Wrap(err, "failed to find shop product")
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// CanModify is false for unknown reports, other users' reports and closed windows.
func (srv *reportService) CanModify(ctx context.Context, reportID, userID uuid.UUID) (bool, error) {
	report, err := srv.repos.PriceReportRepo().FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find report")
	}

	return report.ReportedBy == userID && !srv.windowClosed(report, srv.now().UTC()), nil
}

func (srv *reportService) findOwnedReport(
	ctx context.Context,
	reportRepo repository.PriceReportRepository,
	reportID, userID uuid.UUID,
	now time.Time,
) (*entity.PriceReport, error) {
	report, err := reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report")
	}
	if report.ReportedBy != userID {
		return nil, domainerrors.ErrReportOwnershipViolation
	}
	if srv.windowClosed(report, now) {
		return nil, domainerrors.NewWindowError(srv.reporting.ModifyWindow, report.ReportedAt)
	}

	return report, nil
}

// windowClosed is true once strictly more than ModifyWindow has elapsed.
func (srv *reportService) windowClosed(report *entity.PriceReport, now time.Time) bool {
	return now.Sub(report.ReportedAt) > srv.reporting.ModifyWindow
}

func validateSubmitInput(input *usecase.SubmitReportInput) (decimal.Decimal, error) {
	if input == nil {
		return decimal.Zero, domainerrors.ErrValidationFailed
	}
	if input.ProductID <= 0 {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("productId must be positive")
	}
	if input.UserID == uuid.Nil {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}
	if input.ShopID != nil && *input.ShopID == uuid.Nil {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("shopId is malformed")
	}

	price := input.Price.Round(2)
	if !price.IsPositive() {
		return decimal.Zero, domainerrors.ErrInvalidPrice
	}
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return decimal.Zero, domainerrors.ErrInvalidCoordinates
	}
	if input.GPSAccuracy != nil && *input.GPSAccuracy < 0 {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("gpsAccuracy must not be negative")
	}

	return price, nil
}
