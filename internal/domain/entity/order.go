// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents a stage in the order fulfilment lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the initial status assigned at checkout.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the order has been acknowledged by the store.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusProcessing means the order is being packed.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped means the order has left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered means the order reached the customer. Reviews require this status.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled means the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is an immutable record of a completed purchase. Only Status and
// timestamps change after creation.
type Order struct {
	ID              uuid.UUID       `json:"id"`               // The Global Unique Identifier (GUID) for the order.
	OrderNumber     string          `json:"order_number"`     // Unique human-facing order reference (prefix + random suffix).
	UserID          uuid.UUID       `json:"user_id"`          // The ID of the user who placed the order.
	Status          OrderStatus     `json:"status"`           // Current fulfilment status.
	TotalAmount     decimal.Decimal `json:"total_amount"`     // Subtotal minus DiscountAmount.
	DiscountAmount  decimal.Decimal `json:"discount_amount"`  // Discount applied at checkout, zero when no promo applied.
	PromoCode       *string         `json:"promo_code"`       // Snapshot of the applied promo code text, nil when none. Not a live reference.
	ShippingAddress string          `json:"shipping_address"` // Delivery address supplied at checkout.
	Notes           string          `json:"notes"`            // Optional delivery notes.
	Items           []*OrderItem    `json:"items"`            // Line items with purchase-time price snapshots.
	CreatedAt       time.Time       `json:"created_at"`       // Timestamp of when the order was placed.
	UpdatedAt       time.Time       `json:"updated_at"`       // Timestamp of the last status transition.
}

// Subtotal returns the order amount before the discount.
func (o *Order) Subtotal() decimal.Decimal {
	return o.TotalAmount.Add(o.DiscountAmount)
}

// ContainsProduct reports whether the order includes the given product.
func (o *Order) ContainsProduct(productID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}

// OrderItem is a purchased line item. Price is a point-in-time copy of the
// product price, independent of later price changes.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`         // The Global Unique Identifier (GUID) for the line item.
	OrderID   uuid.UUID       `json:"order_id"`   // The ID of the order this item belongs to.
	ProductID uuid.UUID       `json:"product_id"` // The ID of the purchased product.
	Product   *Product        `json:"product"`    // The product record, when loaded.
	Quantity  int             `json:"quantity"`   // Purchased quantity.
	Price     decimal.Decimal `json:"price"`      // Unit price snapshot at purchase time.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of when the item was recorded.
}

// LineTotal returns quantity times the snapshot price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
