package usecase

import (
	"context"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist use cases
type WishlistUsecase interface {
	// GetWishlist retrieves the user's wishlist, newest first
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// AddItem adds a product to the user's wishlist. Re-adding a product is a
	// no-op that returns the existing item with created=false.
	AddItem(ctx context.Context, userID, productID uuid.UUID) (item *entity.WishlistItem, created bool, err error)

	// RemoveItem removes a product from the user's wishlist
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}
