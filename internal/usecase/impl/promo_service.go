package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sayur/internal/domain/entity"
	"sayur/internal/domain/promo"
	"sayur/internal/domain/repository"
	"sayur/internal/usecase"

	"github.com/google/uuid"
)

type promoService struct {
	promoRepo repository.PromoCodeRepository
	cartRepo  repository.CartRepository
}

// NewPromoService creates a new promo service instance
func NewPromoService(
	promoRepo repository.PromoCodeRepository,
	cartRepo repository.CartRepository,
) usecase.PromoUsecase {
	return &promoService{
		promoRepo: promoRepo,
		cartRepo:  cartRepo,
	}
}

// Preview evaluates a promo code against the user's current cart. Unlike
// checkout, the outcome names the reason a code does not apply, and no
// redemption is consumed.
func (s *promoService) Preview(ctx context.Context, userID uuid.UUID, code string) (*usecase.PromoPreview, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	subtotal := entity.CartSubtotal(items)

	promoCode, err := s.promoRepo.FindActiveByCode(ctx, code)
	if err != nil && !errors.Is(err, repository.ErrPromoCodeNotFound) {
		return nil, fmt.Errorf("failed to find promo code: %w", err)
	}

	result := promo.Evaluate(promoCode, subtotal, time.Now())

	return &usecase.PromoPreview{
		Code:        code,
		Eligibility: string(result.Eligibility),
		Discount:    result.Discount.String(),
		Subtotal:    subtotal.String(),
		Total:       subtotal.Sub(result.Discount).String(),
	}, nil
}
