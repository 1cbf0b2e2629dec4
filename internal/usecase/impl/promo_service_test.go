package impl

import (
	"context"
	"testing"
	"time"

	"sayur/internal/domain/entity"
	"sayur/internal/domain/promo"
	"sayur/internal/domain/repository"
	mockRepo "sayur/internal/mocks/repository"
	"sayur/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promoServiceFixtures holds all test dependencies for promo service tests.
type promoServiceFixtures struct {
	service   usecase.PromoUsecase
	promoRepo *mockRepo.MockPromoCodeRepository
	cartRepo  *mockRepo.MockCartRepository
}

func createTestPromoService(t *testing.T) promoServiceFixtures {
	promoRepo := mockRepo.NewMockPromoCodeRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	service := NewPromoService(promoRepo, cartRepo)

	return promoServiceFixtures{
		service:   service,
		promoRepo: promoRepo,
		cartRepo:  cartRepo,
	}
}

func TestPromoService_Preview_Applied(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 3),
	}
	promoCode := &entity.PromoCode{
		ID:            uuid.New(),
		Code:          "WELCOME10",
		Type:          entity.PromoTypePercentage,
		Value:         decimal.RequireFromString("10"),
		MinimumAmount: decimal.RequireFromString("50000"),
		IsActive:      true,
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	fx.promoRepo.EXPECT().FindActiveByCode(ctx, "WELCOME10").Return(promoCode, nil)

	preview, err := fx.service.Preview(ctx, userID, "WELCOME10")

	require.NoError(t, err)
	assert.Equal(t, string(promo.EligibilityApplied), preview.Eligibility)
	assert.Equal(t, "6000", preview.Discount)
	assert.Equal(t, "60000", preview.Subtotal)
	assert.Equal(t, "54000", preview.Total)
}

func TestPromoService_Preview_BelowMinimum(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 10, 2),
		testCartItem(userID, "Tomat Ceri", "tomat-ceri", "8000", 5, 1),
	}
	promoCode := &entity.PromoCode{
		ID:            uuid.New(),
		Code:          "SAYUR50K",
		Type:          entity.PromoTypeFixed,
		Value:         decimal.RequireFromString("5000"),
		MinimumAmount: decimal.RequireFromString("30000"),
		IsActive:      true,
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	fx.promoRepo.EXPECT().FindActiveByCode(ctx, "SAYUR50K").Return(promoCode, nil)

	preview, err := fx.service.Preview(ctx, userID, "SAYUR50K")

	require.NoError(t, err)
	assert.Equal(t, string(promo.EligibilityBelowMinimum), preview.Eligibility)
	assert.Equal(t, "0", preview.Discount)
	assert.Equal(t, "15000", preview.Total)
}

func TestPromoService_Preview_NotFound(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 1),
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	fx.promoRepo.EXPECT().
		FindActiveByCode(ctx, "TYPO").
		Return(nil, repository.ErrPromoCodeNotFound)

	preview, err := fx.service.Preview(ctx, userID, "TYPO")

	require.NoError(t, err)
	assert.Equal(t, string(promo.EligibilityNotFound), preview.Eligibility)
	assert.Equal(t, "0", preview.Discount)
}

func TestPromoService_Preview_Expired(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 3),
	}
	expiry := time.Now().Add(-time.Hour)
	promoCode := &entity.PromoCode{
		ID:        uuid.New(),
		Code:      "LEBARAN",
		Type:      entity.PromoTypeFixed,
		Value:     decimal.RequireFromString("5000"),
		ExpiresAt: &expiry,
		IsActive:  true,
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	fx.promoRepo.EXPECT().FindActiveByCode(ctx, "LEBARAN").Return(promoCode, nil)

	preview, err := fx.service.Preview(ctx, userID, "LEBARAN")

	require.NoError(t, err)
	assert.Equal(t, string(promo.EligibilityExpired), preview.Eligibility)
	assert.Equal(t, "0", preview.Discount)
}

func TestPromoService_Preview_EmptyCart(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	userID := uuid.New()
	promoCode := &entity.PromoCode{
		ID:            uuid.New(),
		Code:          "SAYUR50K",
		Type:          entity.PromoTypeFixed,
		Value:         decimal.RequireFromString("5000"),
		MinimumAmount: decimal.RequireFromString("30000"),
		IsActive:      true,
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)
	fx.promoRepo.EXPECT().FindActiveByCode(ctx, "SAYUR50K").Return(promoCode, nil)

	preview, err := fx.service.Preview(ctx, userID, "SAYUR50K")

	require.NoError(t, err)
	assert.Equal(t, string(promo.EligibilityBelowMinimum), preview.Eligibility)
	assert.Equal(t, "0", preview.Subtotal)
}
