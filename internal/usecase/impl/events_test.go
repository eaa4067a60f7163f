package impl

import (
	"context"
	"testing"
	"time"

	"pricemap/internal/domain/constants"
	"pricemap/internal/domain/entity"
	"pricemap/internal/domain/service"
	"pricemap/internal/errors"
	mockService "pricemap/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventSink_PublishFailureIsSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sink := &eventSink{publisher: publisher, logger: newDiscardLogger(), now: func() time.Time { return now }}
	shop := &entity.Shop{ID: uuid.New(), Name: "Corner Market"}

	var published *service.ShopEvent
	publisher.EXPECT().
		PublishShopEvent(mock.Anything, mock.AnythingOfType("*service.ShopEvent")).
		Run(func(_ context.Context, event *service.ShopEvent) { published = event }).
		Return(errors.New("topic not found"))

	sink.priceUpdated(context.Background(), shop, productMilk, decimal.RequireFromString("12.5"), uuid.Nil)

	if assert.NotNil(t, published) {
		assert.Equal(t, constants.EventPriceUpdated, published.EventType)
		assert.Equal(t, "12.50", published.Price)
		assert.Equal(t, "2026-03-10T09:00:00Z", published.CreatedAt)
		assert.NotEmpty(t, published.EventID)
		assert.Empty(t, published.UserID)
	}
}

func TestEventSink_NilPublisher(t *testing.T) {
	var sink *eventSink
	assert.NotPanics(t, func() {
		sink.shopCreated(context.Background(), &entity.Shop{ID: uuid.New()}, uuid.New())
	})

	sink = &eventSink{logger: newDiscardLogger(), now: time.Now}
	assert.NotPanics(t, func() {
		sink.shopCreated(context.Background(), &entity.Shop{ID: uuid.New()}, uuid.New())
	})
}
