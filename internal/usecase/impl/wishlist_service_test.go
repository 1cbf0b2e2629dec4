package impl

import (
	"context"
	"testing"

	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/repository"
	mockRepo "sayur/internal/mocks/repository"
	"sayur/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(wishlistRepo, productRepo)

	return wishlistServiceFixtures{
		service:      service,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func TestWishlistService_GetWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.WishlistItem{
		{ID: uuid.New(), UserID: userID, ProductID: uuid.New()},
	}

	fx.wishlistRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	items, err := fx.service.GetWishlist(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestWishlistService_AddItem_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Wortel Organik",
		Price:    decimal.RequireFromString("12000"),
		IsActive: true,
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(nil, repository.ErrWishlistItemNotFound)
	fx.wishlistRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		Return(nil)

	item, created, err := fx.service.AddItem(ctx, userID, product.ID)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, product, item.Product)
	assert.Equal(t, userID, item.UserID)
}

func TestWishlistService_AddItem_AlreadyWishedIsNoOp(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Wortel Organik", IsActive: true}
	existing := &entity.WishlistItem{ID: uuid.New(), UserID: userID, ProductID: product.ID}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(existing, nil)

	item, created, err := fx.service.AddItem(ctx, userID, product.ID)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, item.ID)
	assert.Equal(t, product, item.Product)
}

func TestWishlistService_AddItem_InactiveProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsActive: false}, nil)

	_, _, err := fx.service.AddItem(ctx, uuid.New(), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_RemoveItem_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	item := &entity.WishlistItem{ID: uuid.New(), UserID: userID, ProductID: productID}

	fx.wishlistRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(item, nil)
	fx.wishlistRepo.EXPECT().Delete(ctx, item.ID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, productID)

	assert.NoError(t, err)
}

func TestWishlistService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.wishlistRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(nil, repository.ErrWishlistItemNotFound)

	err := fx.service.RemoveItem(ctx, userID, productID)

	assert.ErrorIs(t, err, domainerrors.ErrWishlistItemNotFound)
}
