package service

import (
	"context"
)

// OrderItemEvent is one purchased line in an OrderCreatedEvent.
type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"` // Decimal string of the unit price snapshot.
}

// OrderCreatedEvent is published after a checkout transaction commits, so
// downstream consumers (fulfilment, notifications) can react asynchronously.
type OrderCreatedEvent struct {
	RequestID      string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID        string           `json:"order_id"`
	OrderNumber    string           `json:"order_number"`
	UserID         string           `json:"user_id"`
	TotalAmount    string           `json:"total_amount"`    // Decimal string.
	DiscountAmount string           `json:"discount_amount"` // Decimal string.
	PromoCode      string           `json:"promo_code,omitempty"`
	Items          []OrderItemEvent `json:"items"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
