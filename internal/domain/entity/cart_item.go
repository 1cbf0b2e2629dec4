// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a single product/quantity selection in a user's pending cart.
// A user holds at most one CartItem per product.
type CartItem struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the cart item.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this cart item.
	ProductID uuid.UUID `json:"product_id"` // The ID of the selected product.
	Product   *Product  `json:"product"`    // The product record, when loaded.
	Quantity  int       `json:"quantity"`   // Requested quantity, always >= 1.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the item was added.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last quantity change.
}

// LineTotal returns quantity times the live product price.
// The product must be loaded.
func (c *CartItem) LineTotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}

	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CartSubtotal sums the line totals of all items using live product prices.
func CartSubtotal(items []*CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return subtotal
}
