package pubsub

import "pricemap/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.ShopEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.EventType,
		"shop_id":    event.ShopID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
