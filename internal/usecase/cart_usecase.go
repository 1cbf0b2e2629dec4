package usecase

import (
	"context"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// Cart is a user's current cart with its live-priced subtotal.
type Cart struct {
	Items    []*entity.CartItem `json:"items"`
	Subtotal string             `json:"subtotal"` // Decimal string.
}

// CartUsecase defines the interface for cart management use cases
type CartUsecase interface {
	// GetCart retrieves the user's cart items with the live subtotal
	GetCart(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// AddItem adds a product to the cart, or bumps the quantity if already present
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// UpdateItem sets the quantity of a cart item owned by the user
	UpdateItem(ctx context.Context, userID, cartItemID uuid.UUID, quantity int) (*entity.CartItem, error)

	// RemoveItem removes a cart item owned by the user
	RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error
}
