package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrDuplicateOrderNumber is returned when an insert collides on the unique
// order number. Callers regenerate the number and retry.
var ErrDuplicateOrderNumber = errors.New("duplicate order number")

// OrderRepository defines the standard operations for order persistence.
// Orders and their items are never deleted; only Status changes after creation.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items and products loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a page of the user's orders, newest first, with the
	// total order count.
	FindByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]*entity.Order, int64, error)

	// UpdateStatus transitions an order to a new fulfilment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
