package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PromoPreview reports how a promo code would apply to the user's current cart.
type PromoPreview struct {
	Code        string `json:"code"`
	Eligibility string `json:"eligibility"` // One of the promo engine eligibility values.
	Discount    string `json:"discount"`   // Decimal string; zero unless eligible.
	Subtotal    string `json:"subtotal"`   // Decimal string of the current cart subtotal.
	Total       string `json:"total"`      // Decimal string of subtotal minus discount.
}

// PromoUsecase defines the interface for promo code use cases
type PromoUsecase interface {
	// Preview evaluates a promo code against the user's current cart without
	// consuming a redemption
	Preview(ctx context.Context, userID uuid.UUID, code string) (*PromoPreview, error)
}
