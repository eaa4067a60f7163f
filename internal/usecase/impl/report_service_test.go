package impl

import (
	"context"
	"testing"
	"time"

	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/pricing"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"
	mockRepo "pricemap/internal/mocks/repository"
	mockService "pricemap/internal/mocks/service"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service    *reportService
	txManager  *mockRepo.MockTransactionManager
	repos      *mockRepo.MockRepositoryFactory
	reportRepo *mockRepo.MockPriceReportRepository
	catalog    *mockService.MockProductCatalog
	publisher  *mockService.MockEventPublisher
	now        time.Time
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := mockRepo.NewMockRepositoryFactory(t)
	reportRepo := mockRepo.NewMockPriceReportRepository(t)
	catalog := mockService.NewMockProductCatalog(t)
	publisher := mockService.NewMockEventPublisher(t)
	cfg := newTestConfig()
	logger := newDiscardLogger()

	service := NewReportService(ReportServiceParams{
		TxManager: txManager,
		Repos:     repos,
		Catalog:   catalog,
		Publisher: publisher,
		Verifier:  newTestVerifier(cfg),
		Engine:    pricing.NewEngine(pricing.Config{}, logger),
		Config:    cfg,
		Logger:    logger,
	}).(*reportService)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	return reportServiceFixtures{
		service:    service,
		txManager:  txManager,
		repos:      repos,
		reportRepo: reportRepo,
		catalog:    catalog,
		publisher:  publisher,
		now:        now,
	}
}

// onExecute runs the transaction body against factory and returns its error.
func (fx reportServiceFixtures) onExecute(ctx context.Context, factory repository.RepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestReportService_SubmitReport_Validation(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	zero := uuid.Nil
	negative := -1.0

	tests := []struct {
		name  string
		input *usecase.SubmitReportInput
		want  error
	}{
		{
			name: "nil input",
			want: domainerrors.ErrValidationFailed,
		},
		{
			name:  "missing product",
			input: &usecase.SubmitReportInput{Price: decimal.NewFromInt(1), UserID: uuid.New()},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "missing user",
			input: &usecase.SubmitReportInput{ProductID: 1, Price: decimal.NewFromInt(1)},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "nil shop id",
			input: &usecase.SubmitReportInput{ProductID: 1, Price: decimal.NewFromInt(1), UserID: uuid.New(), ShopID: &zero},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "zero price",
			input: &usecase.SubmitReportInput{ProductID: 1, UserID: uuid.New()},
			want:  domainerrors.ErrInvalidPrice,
		},
		{
			name:  "price rounds to zero",
			input: &usecase.SubmitReportInput{ProductID: 1, Price: decimal.RequireFromString("0.004"), UserID: uuid.New()},
			want:  domainerrors.ErrInvalidPrice,
		},
		{
			name:  "latitude out of range",
			input: &usecase.SubmitReportInput{ProductID: 1, Price: decimal.NewFromInt(1), UserID: uuid.New(), Latitude: 95},
			want:  domainerrors.ErrInvalidCoordinates,
		},
		{
			name: "negative accuracy",
			input: &usecase.SubmitReportInput{
				ProductID: 1, Price: decimal.NewFromInt(1), UserID: uuid.New(), Latitude: 1, Longitude: 1, GPSAccuracy: &negative,
			},
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := fx.service.SubmitReport(ctx, tt.input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReportService_SubmitReport_CatalogErrors(t *testing.T) {
	ctx := context.Background()
	input := &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    uuid.New(),
	}

	t.Run("unavailable passes through", func(t *testing.T) {
		fx := createTestReportService(t)
		fx.catalog.EXPECT().GetProduct(ctx, productMilk).Return(nil, domainerrors.ErrCatalogUnavailable)

		_, err := fx.service.SubmitReport(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	})

	t.Run("unexpected error becomes unavailable", func(t *testing.T) {
		fx := createTestReportService(t)
		fx.catalog.EXPECT().GetProduct(ctx, productMilk).Return(nil, errors.New("connection reset"))

		_, err := fx.service.SubmitReport(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestReportService(t)
		fx.catalog.EXPECT().GetProduct(ctx, productMilk).Return(&entity.Product{ID: productMilk}, nil)

		_, err := fx.service.SubmitReport(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrProductInactive)
	})
}

func TestReportService_SubmitReport_DuplicateCheckFailsOpen(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	shopID := uuid.New()
	userID := uuid.New()

	fx.catalog.EXPECT().GetProduct(ctx, productMilk).Return(&entity.Product{ID: productMilk, IsActive: true}, nil)
	fx.repos.EXPECT().PriceReportRepo().Return(fx.reportRepo)
	fx.reportRepo.EXPECT().
		HasUserReportedOn(ctx, productMilk, shopID, userID, fx.now).
		Return(false, errors.New("timeout"))

	txRepos := mockRepo.NewMockRepositoryFactory(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	txRepos.EXPECT().ShopRepo().Return(shopRepo)
	shopRepo.EXPECT().FindShopByID(ctx, shopID).Return(nil, repository.ErrShopNotFound)
	fx.onExecute(ctx, txRepos)

	_, err := fx.service.SubmitReport(ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    userID,
		ShopID:    &shopID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestReportService_SubmitReport_TransactionFailure(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.catalog.EXPECT().GetProduct(ctx, productMilk).Return(&entity.Product{ID: productMilk, IsActive: true}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(dbErr)

	result, err := fx.service.SubmitReport(ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
	fx.publisher.AssertNotCalled(t, "PublishShopEvent", mock.Anything, mock.Anything)
}

func TestReportService_SubmitReport_CreateShopFailureRollsBack(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().GetProduct(ctx, productMilk).Return(&entity.Product{ID: productMilk, IsActive: true}, nil)

	txRepos := mockRepo.NewMockRepositoryFactory(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	txRepos.EXPECT().ShopRepo().Return(shopRepo)
	shopRepo.EXPECT().LockArea(ctx, mock.Anything).Return(nil)
	shopRepo.EXPECT().FindShopsWithinBound(ctx, mock.Anything).Return(nil, nil)
	shopRepo.EXPECT().CreateShop(ctx, mock.AnythingOfType("*entity.Shop")).Return(errors.New("disk full"))
	fx.onExecute(ctx, txRepos)

	_, err := fx.service.SubmitReport(ctx, &usecase.SubmitReportInput{
		ProductID: productMilk,
		Price:     decimal.NewFromInt(10),
		Latitude:  shopLat,
		Longitude: shopLon,
		UserID:    uuid.New(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create shop")
}

func TestReportService_CanModify(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	reportID := uuid.New()

	t.Run("unknown report", func(t *testing.T) {
		fx := createTestReportService(t)
		fx.repos.EXPECT().PriceReportRepo().Return(fx.reportRepo)
		fx.reportRepo.EXPECT().FindReportByID(ctx, reportID).Return(nil, repository.ErrReportNotFound)

		allowed, err := fx.service.CanModify(ctx, reportID, owner)
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("store error", func(t *testing.T) {
		fx := createTestReportService(t)
		fx.repos.EXPECT().PriceReportRepo().Return(fx.reportRepo)
		fx.reportRepo.EXPECT().FindReportByID(ctx, reportID).Return(nil, errors.New("boom"))

		_, err := fx.service.CanModify(ctx, reportID, owner)
		assert.Error(t, err)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestReportService(t)
		fx.repos.EXPECT().PriceReportRepo().Return(fx.reportRepo)
		fx.reportRepo.EXPECT().FindReportByID(ctx, reportID).Return(&entity.PriceReport{
			ID:         reportID,
			ReportedBy: uuid.New(),
			ReportedAt: fx.now,
		}, nil)

		allowed, err := fx.service.CanModify(ctx, reportID, owner)
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestReportService_UndoReport_Ownership(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	reportID := uuid.New()

	txRepos := mockRepo.NewMockRepositoryFactory(t)
	reportRepo := mockRepo.NewMockPriceReportRepository(t)
	txRepos.EXPECT().PriceReportRepo().Return(reportRepo)
	reportRepo.EXPECT().FindReportByID(ctx, reportID).Return(&entity.PriceReport{
		ID:         reportID,
		ReportedBy: uuid.New(),
		ReportedAt: fx.now,
	}, nil)
	fx.onExecute(ctx, txRepos)

	undone, err := fx.service.UndoReport(ctx, reportID, uuid.New())
	assert.False(t, undone)
	assert.ErrorIs(t, err, domainerrors.ErrReportOwnershipViolation)
}
