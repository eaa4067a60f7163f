package impl

import (
	"context"
	"log/slog"

	"pricemap/config"
	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/repository"
	"pricemap/internal/errors"
	"pricemap/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type auditService struct {
	txManager    repository.TransactionManager
	radiusMeters float64
	logger       *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.ShopAuditUsecase {
	return &auditService{
		txManager:    params.TxManager,
		radiusMeters: params.Config.ReportingOrDefault().MaxReportDistanceMeters,
		logger:       params.Logger,
	}
}

// AuditNewShop flags a shop that was created next to an older active shop,
// which happens when two creations race past the nearby check.
func (srv *auditService) AuditNewShop(ctx context.Context, shopID uuid.UUID) (*usecase.ShopAuditResult, error) {
	result := &usecase.ShopAuditResult{ShopID: shopID}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shopRepo := repos.ShopRepo()
		shop, err := findShop(ctx, shopRepo, shopID)
		if err != nil {
			return err
		}

		ids, err := repos.LocationRepo().FindShopIDsWithinRadius(ctx, shop.Point(), srv.radiusMeters)
		if err != nil {
			return errors.Wrap(err, "failed to search nearby shops")
		}

		for _, id := range ids {
			if id == shop.ID {
				continue
			}
			other, err := shopRepo.FindShopByID(ctx, id)
			if errors.Is(err, repository.ErrShopNotFound) {
				continue
			}
			if err != nil {
				return errors.Wrap(err, "failed to load nearby shop")
			}
			if other.IsActive && createdBefore(other, shop) {
				result.DuplicateOf = append(result.DuplicateOf, other.ID)
			}
		}

		if len(result.DuplicateOf) == 0 || shop.Status == entity.ShopStatusPending || !shop.Status.CanTransitionTo(entity.ShopStatusPending) {
			return nil
		}

		shop.Status = entity.ShopStatusPending
		if err := shopRepo.UpdateShop(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to flag shop")
		}
		result.Flagged = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Flagged {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Shop flagged as possible duplicate",
			slog.Any("shopID", shopID),
			slog.Any("duplicateOf", result.DuplicateOf),
		)
	}

	return result, nil
}

// createdBefore orders shops by creation time, then id.
func createdBefore(a, b *entity.Shop) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}

	return a.ID.String() < b.ID.String()
}
