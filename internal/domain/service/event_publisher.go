package service

import (
	"context"
	"time"
)

// OrderStatusChangedEventType is the event_type attribute of published order status events
const OrderStatusChangedEventType = "order.status_changed"

// OrderStatusEvent is emitted after an order status write took effect in at least one location
type OrderStatusEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string         `json:"order_id"`
	OwnerID   string         `json:"owner_id,omitempty"`
	Status    string         `json:"status"`
	Fields    map[string]any `json:"fields,omitempty"`
	ChangedAt time.Time      `json:"changed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderStatusEvent publishes an order status change for downstream consumers
	PublishOrderStatusEvent(ctx context.Context, event *OrderStatusEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
