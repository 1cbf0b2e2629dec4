// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating and comment for a product, tied to the delivered
// order it was purchased in. A user may leave one review per (product, order).
type Review struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the review.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the reviewing user.
	ProductID uuid.UUID `json:"product_id"` // The ID of the reviewed product.
	OrderID   uuid.UUID `json:"order_id"`   // The delivered order that contained the product.
	Rating    int       `json:"rating"`     // Star rating, integer 1-5.
	Comment   string    `json:"comment"`    // Optional review text.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the review was written.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last edit.
}
