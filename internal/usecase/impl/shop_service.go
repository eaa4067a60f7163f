package impl

import (
	"context"
	"log/slog"
	"time"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/entity"
	domainerrors "pricemap/internal/domain/errors"
	"pricemap/internal/domain/geo"
	"pricemap/internal/domain/repository"
	"pricemap/internal/domain/service"
	"pricemap/internal/errors"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type shopService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	verifier  *geo.Verifier
	resolver  *shopResolver
	qrService service.QRCodeService
	reporting config.ReportingConfig
	logger    *slog.Logger
	now       func() time.Time
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Verifier  *geo.Verifier
	QRService service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	reporting := params.Config.ReportingOrDefault()

	return &shopService{
		txManager: params.TxManager,
		repos:     params.Repos,
		verifier:  params.Verifier,
		resolver:  newShopResolver(params.Verifier, reporting),
		qrService: params.QRService,
		reporting: reporting,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearbyShops searches around a point. A zero radius means the creation
// radius, and radii above MaxSearchRadiusMeters are clamped.
func (srv *shopService) FindNearbyShops(ctx context.Context, input *usecase.NearbyShopsInput) (*usecase.NearbyShopsResult, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if input.RadiusMeters < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must not be negative")
	}

	radius := input.RadiusMeters
	if radius == 0 {
		radius = srv.resolver.creationRadius
	}
	radius = min(radius, srv.reporting.MaxSearchRadiusMeters)

	center := orb.Point{input.Longitude, input.Latitude}
	hits, err := srv.resolver.FindNearby(ctx, srv.repos.ShopRepo(), center, radius)
	if err != nil {
		return nil, err
	}
	neighbours, err := srv.resolver.FindNeighbours(ctx, srv.repos.ShopRepo(), center, srv.resolver.creationRadius)
	if err != nil {
		return nil, err
	}

	withProduct := map[uuid.UUID]bool{}
	if input.ProductID > 0 && len(hits) > 0 {
		ids := make([]uuid.UUID, 0, len(hits))
		for _, hit := range hits {
			ids = append(ids, hit.shop.ID)
		}
		withProduct, err = srv.repos.ShopProductRepo().FindShopIDsWithProduct(ctx, input.ProductID, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find shops with product")
		}
	}

	result := &usecase.NearbyShopsResult{
		Shops:        make([]*usecase.NearbyShop, 0, len(hits)),
		Count:        len(hits),
		CanCreateNew: len(neighbours) == 0,
		RadiusMeters: radius,
	}
	for _, hit := range hits {
		result.Shops = append(result.Shops, &usecase.NearbyShop{
			Shop:           hit.shop,
			DistanceMeters: hit.distance,
			HasProduct:     withProduct[hit.shop.ID],
		})
	}

	return result, nil
}

// GetShop retrieves a shop with its declarants.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	return findShop(ctx, srv.repos.ShopRepo(), shopID)
}

// ListShopProducts returns the displayed prices of a shop.
func (srv *shopService) ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopProduct, error) {
	if _, err := findShop(ctx, srv.repos.ShopRepo(), shopID); err != nil {
		return nil, err
	}

	products, err := srv.repos.ShopProductRepo().FindShopProductsByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop products")
	}

	return products, nil
}

// ListDeclaredShops returns the shops a user has declared.
func (srv *shopService) ListDeclaredShops(ctx context.Context, userID uuid.UUID) ([]*entity.Shop, error) {
	shops, err := srv.repos.ShopRepo().FindShopsByDeclarant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list declared shops")
	}

	return shops, nil
}

// DeclareShop adds the caller to the declarants of a shop they stand at.
func (srv *shopService) DeclareShop(ctx context.Context, input *usecase.DeclareShopInput) (*usecase.DeclareShopResult, error) {
	if input == nil || input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	var result *usecase.DeclareShopResult
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shopRepo := repos.ShopRepo()
		shop, err := findShop(ctx, shopRepo, input.ShopID)
		if err != nil {
			return err
		}
		if !shop.IsActive {
			return domainerrors.ErrShopNotFound.WithDetails("shop is not active")
		}
		if shop.Declarants.Contains(input.UserID) {
			return domainerrors.ErrAlreadyDeclared
		}

		verification := srv.verifier.Verify(input.Latitude, input.Longitude, shop.Latitude, shop.Longitude, input.GPSAccuracy)
		if !verification.Accepted {
			return verification.Err()
		}

		if err := shopRepo.AddDeclarant(ctx, shop.ID, input.UserID); err != nil {
			if errors.Is(err, repository.ErrDeclarantExists) {
				return domainerrors.ErrAlreadyDeclared
			}

			return errors.Wrap(err, "failed to add declarant")
		}
		shop.Declarants.Add(input.UserID)

		result = &usecase.DeclareShopResult{
			Shop:           shop,
			DistanceMeters: verification.DistanceMeters,
			Message:        verification.Message,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GenerateShopQR renders a share code for an existing shop.
func (srv *shopService) GenerateShopQR(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	if _, err := findShop(ctx, srv.repos.ShopRepo(), shopID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShopQR(shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}

// VerifyShop marks a shop verified and reactivates it.
func (srv *shopService) VerifyShop(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error) {
	return srv.moderate(ctx, shopID, adminID, func(shop *entity.Shop, now time.Time) error {
		if !shop.Status.CanTransitionTo(entity.ShopStatusVerified) {
			return domainerrors.ErrInvalidStatusTransition
		}
		shop.Status = entity.ShopStatusVerified
		shop.IsActive = true
		shop.VerifiedBy = &adminID
		shop.VerifiedAt = &now

		return nil
	})
}

// RejectShop marks a shop rejected and hides it.
func (srv *shopService) RejectShop(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error) {
	return srv.moderate(ctx, shopID, adminID, func(shop *entity.Shop, _ time.Time) error {
		if !shop.Status.CanTransitionTo(entity.ShopStatusRejected) {
			return domainerrors.ErrInvalidStatusTransition
		}
		shop.Status = entity.ShopStatusRejected
		shop.IsActive = false

		return nil
	})
}

// SuspendShop marks a shop suspended and hides it.
func (srv *shopService) SuspendShop(ctx context.Context, shopID, adminID uuid.UUID) (*entity.Shop, error) {
	return srv.moderate(ctx, shopID, adminID, func(shop *entity.Shop, _ time.Time) error {
		if !shop.Status.CanTransitionTo(entity.ShopStatusSuspended) {
			return domainerrors.ErrInvalidStatusTransition
		}
		shop.Status = entity.ShopStatusSuspended
		shop.IsActive = false

		return nil
	})
}

// SetShopActive toggles visibility. A rejected shop cannot be reactivated
// this way; it has to be verified.
func (srv *shopService) SetShopActive(ctx context.Context, shopID uuid.UUID, active bool) (*entity.Shop, error) {
	return srv.moderate(ctx, shopID, uuid.Nil, func(shop *entity.Shop, _ time.Time) error {
		if active && shop.Status == entity.ShopStatusRejected {
			return domainerrors.ErrInvalidStatusTransition
		}
		shop.IsActive = active

		return nil
	})
}

func (srv *shopService) moderate(ctx context.Context, shopID, adminID uuid.UUID, apply func(*entity.Shop, time.Time) error) (*entity.Shop, error) {
	var updated *entity.Shop
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shopRepo := repos.ShopRepo()
		shop, err := findShop(ctx, shopRepo, shopID)
		if err != nil {
			return err
		}
		if err := apply(shop, srv.now().UTC()); err != nil {
			return err
		}
		if err := shopRepo.UpdateShop(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}
		updated = shop

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Shop moderated",
		slog.Any("shopID", shopID),
		slog.Any("adminID", adminID),
		slog.String("status", string(updated.Status)),
		slog.Bool("active", updated.IsActive),
	)

	return updated, nil
}
