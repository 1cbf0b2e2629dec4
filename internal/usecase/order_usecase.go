package usecase

import (
	"context"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries the user-supplied checkout fields.
type CheckoutInput struct {
	ShippingAddress string `json:"shipping_address"`
	Notes           string `json:"notes"`
	PromoCode       string `json:"promo_code"` // Optional; ineligible codes degrade to no discount.
}

// OrderPage is one page of a user's order history.
type OrderPage struct {
	Orders  []*entity.Order `json:"orders"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

// OrderUsecase defines the interface for checkout and order history use cases
type OrderUsecase interface {
	// Checkout converts the user's cart into an order within one transaction
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	// ListOrders retrieves a page of the user's orders, newest first
	ListOrders(ctx context.Context, userID uuid.UUID, page, perPage int) (*OrderPage, error)

	// GetOrder retrieves a single order owned by the user
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ConfirmOrder transitions a pending order to confirmed; used by the
	// order-created event consumer
	ConfirmOrder(ctx context.Context, orderID uuid.UUID) error
}
