package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pricemap/internal/delivery/context"
	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// eventSink publishes domain events after commit. Failures are logged and
// never surface to the caller.
type eventSink struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (s *eventSink) shopCreated(ctx context.Context, shop *entity.Shop, userID uuid.UUID) {
	s.publish(ctx, &service.ShopEvent{
		EventType: constants.EventShopCreated,
		ShopID:    shop.ID.String(),
		ShopName:  shop.Name,
		Latitude:  shop.Latitude,
		Longitude: shop.Longitude,
		UserID:    userID.String(),
	})
}

func (s *eventSink) priceUpdated(ctx context.Context, shop *entity.Shop, productID int64, price decimal.Decimal, userID uuid.UUID) {
	event := &service.ShopEvent{
		EventType: constants.EventPriceUpdated,
		ShopID:    shop.ID.String(),
		ShopName:  shop.Name,
		Latitude:  shop.Latitude,
		Longitude: shop.Longitude,
		ProductID: productID,
		Price:     price.StringFixed(2),
	}
	if userID != uuid.Nil {
		event.UserID = userID.String()
	}
	s.publish(ctx, event)
}

func (s *eventSink) publish(ctx context.Context, event *service.ShopEvent) {
	if s == nil || s.publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.CreatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.publisher.PublishShopEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish shop event",
			slog.String("eventType", event.EventType),
			slog.String("shopID", event.ShopID),
			slog.Any("error", err),
		)
	}
}
