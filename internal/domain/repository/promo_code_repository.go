package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPromoCodeNotFound is a domain-specific error returned when no active promo
// code matches the given code string.
var ErrPromoCodeNotFound = errors.New("promo code not found")

// ErrPromoUsageExceeded is returned by IncrementUsage when the guarded increment
// finds the usage limit already reached.
var ErrPromoUsageExceeded = errors.New("promo code usage limit exceeded")

// PromoCodeRepository defines the standard operations for promo code persistence.
type PromoCodeRepository interface {
	// FindActiveByCode retrieves an active promo code by its exact code string.
	// Matching is case-sensitive on the stored value.
	FindActiveByCode(ctx context.Context, code string) (*entity.PromoCode, error)

	// IncrementUsage atomically increments used_count, but only while the usage
	// limit (when set) has not been reached. Returns ErrPromoUsageExceeded when
	// the conditional update matches no row.
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}
