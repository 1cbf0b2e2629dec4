package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistItemNotFound is a domain-specific error returned when a wishlist entry is not found.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistRepository defines the standard operations for wishlist persistence.
type WishlistRepository interface {
	// FindByUser retrieves a user's wishlist, newest first, with products loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// FindByID retrieves a single wishlist entry.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error)

	// FindByUserAndProduct retrieves the user's wishlist entry for a product, if any.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error)

	// Create persists a new wishlist entry.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// Delete removes a wishlist entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
