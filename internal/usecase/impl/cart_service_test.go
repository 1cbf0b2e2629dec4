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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(cartRepo, productRepo)

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart_Subtotal(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 10, 2),
		testCartItem(userID, "Tomat Ceri", "tomat-ceri", "8000", 5, 1),
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)

	cart, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, "15000", cart.Subtotal)
}

func TestCartService_AddItem_NewProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Bayam Segar",
		Price:    decimal.RequireFromString("3500"),
		Stock:    10,
		IsActive: true,
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := fx.service.AddItem(ctx, userID, product.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, product, item.Product)
}

func TestCartService_AddItem_ExistingProductBumpsQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Bayam Segar",
		Price:    decimal.RequireFromString("3500"),
		Stock:    10,
		IsActive: true,
	}
	existing := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  2,
	}
	bumped := &entity.CartItem{
		ID:        existing.ID,
		UserID:    userID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  5,
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(existing, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, existing.ID, 5).Return(nil)
	fx.cartRepo.EXPECT().FindByID(ctx, existing.ID).Return(bumped, nil)

	item, err := fx.service.AddItem(ctx, userID, product.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartService_AddItem_QuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_CombinedQuantityExceedsStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     "Bayam Segar",
		Price:    decimal.RequireFromString("3500"),
		Stock:    4,
		IsActive: true,
	}
	existing := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  3,
	}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, product.ID).
		Return(existing, nil)

	_, err := fx.service.AddItem(ctx, userID, product.ID, 2)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsActive: false}, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 10, 2)

	fx.cartRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, item.ID, 4).Return(nil)

	updated, err := fx.service.UpdateItem(ctx, userID, item.ID, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)
}

func TestCartService_UpdateItem_ForeignItemReportsNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	item := testCartItem(uuid.New(), "Bayam Segar", "bayam-segar", "3500", 10, 2)

	fx.cartRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

	_, err := fx.service.UpdateItem(ctx, uuid.New(), item.ID, 4)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_UpdateItem_ExceedsStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 3, 2)

	fx.cartRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

	_, err := fx.service.UpdateItem(ctx, userID, item.ID, 4)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	item := testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 10, 2)

	fx.cartRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.cartRepo.EXPECT().Delete(ctx, item.ID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, item.ID)

	assert.NoError(t, err)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		FindByID(ctx, itemID).
		Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, uuid.New(), itemID)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
