package service

import (
	"context"
)

// ShopEvent is published after a committed write that changed a shop or one
// of its visible prices.
type ShopEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	EventID   string  `json:"event_id"`
	EventType string  `json:"event_type"` // constants.EventShopCreated or constants.EventPriceUpdated
	ShopID    string  `json:"shop_id"`
	ShopName  string  `json:"shop_name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ProductID int64   `json:"product_id,omitempty"`
	Price     string  `json:"price,omitempty"`
	UserID    string  `json:"user_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShopEvent publishes a shop event for async processing
	PublishShopEvent(ctx context.Context, event *ShopEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
