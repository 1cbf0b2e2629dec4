// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem marks a product a user wants to keep an eye on.
// A user holds at most one WishlistItem per product.
type WishlistItem struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the wishlist entry.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this entry.
	ProductID uuid.UUID `json:"product_id"` // The ID of the wished-for product.
	Product   *Product  `json:"product"`    // The product record, when loaded.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the product was wished for.
}
