package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is a domain-specific error returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindByUser retrieves all cart items for a user with their products loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByID retrieves a single cart item with its product loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindByUserAndProduct retrieves the user's cart item for a specific product.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// Create persists a new cart item.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of an existing cart item.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a single cart item.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every cart item belonging to a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
