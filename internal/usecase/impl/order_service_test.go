package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"sayur/config"
	"sayur/internal/domain/constants"
	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/ordernum"
	"sayur/internal/domain/repository"
	"sayur/internal/domain/service"
	mockRepo "sayur/internal/mocks/repository"
	mockService "sayur/internal/mocks/service"
	"sayur/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t         *testing.T
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
	cache     *mockService.MockProductCache
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	cache := mockService.NewMockProductCache(t)
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{
			OrderNumberPrefix:   "GS-",
			OrderNumberAttempts: 3,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOrderService(txManager, orderRepo, publisher, cache, cfg, logger)

	return orderServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
		cache:     cache,
	}
}

// onExecute stubs one transaction: the callback wires the factory's
// repositories, and the error returned by the transaction body propagates.
func (fx orderServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func testCartItem(userID uuid.UUID, name, slug, price string, stock, quantity int) *entity.CartItem {
	productID := uuid.New()

	return &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Product: &entity.Product{
			ID:       productID,
			Name:     name,
			Slug:     slug,
			Price:    decimal.RequireFromString(price),
			Stock:    stock,
			IsActive: true,
		},
	}
}

func TestOrderService_Checkout_Success_NoPromo(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 10, 2),
		testCartItem(userID, "Tomat Ceri", "tomat-ceri", "8000", 5, 1),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promoRepo := mockRepo.NewMockPromoCodeRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(promoRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 2).Return(nil)
		productRepo.EXPECT().DecrementStock(ctx, items[1].ProductID, 1).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	var published *service.OrderCreatedEvent
	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Run(func(ctx context.Context, event *service.OrderCreatedEvent) {
			published = event
		}).
		Return(nil)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome,
			constants.CacheKeyProductPrefix+"bayam-segar",
			constants.CacheKeyProductPrefix+"tomat-ceri").
		Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "GS-"))
	assert.Len(t, order.OrderNumber, len("GS-")+ordernum.SuffixLength)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("15000")))
	assert.True(t, order.DiscountAmount.IsZero())
	assert.Nil(t, order.PromoCode)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("3500")))
	assert.Equal(t, 2, order.Items[0].Quantity)

	require.NotNil(t, published)
	assert.Equal(t, order.OrderNumber, published.OrderNumber)
	assert.Equal(t, "15000", published.TotalAmount)
	assert.Len(t, published.Items, 2)
}

func TestOrderService_Checkout_PromoApplied(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 3),
	}
	promoID := uuid.New()
	promoCode := &entity.PromoCode{
		ID:            promoID,
		Code:          "WELCOME10",
		Type:          entity.PromoTypePercentage,
		Value:         decimal.RequireFromString("10"),
		MinimumAmount: decimal.RequireFromString("50000"),
		IsActive:      true,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promoRepo := mockRepo.NewMockPromoCodeRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(promoRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 3).Return(nil)
		promoRepo.EXPECT().FindActiveByCode(ctx, "WELCOME10").Return(promoCode, nil)
		promoRepo.EXPECT().IncrementUsage(ctx, promoID).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome, constants.CacheKeyProductPrefix+"brokoli").
		Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
		PromoCode:       "WELCOME10",
	})

	require.NoError(t, err)
	assert.True(t, order.DiscountAmount.Equal(decimal.RequireFromString("6000")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("54000")))
	require.NotNil(t, order.PromoCode)
	assert.Equal(t, "WELCOME10", *order.PromoCode)
}

func TestOrderService_Checkout_PromoBelowMinimum_FullPrice(t *testing.T) {
	fx := createTestOrderService(t)

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

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promoRepo := mockRepo.NewMockPromoCodeRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(promoRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 2).Return(nil)
		productRepo.EXPECT().DecrementStock(ctx, items[1].ProductID, 1).Return(nil)
		// Subtotal 15000 is under the 30000 minimum; no usage is consumed.
		promoRepo.EXPECT().FindActiveByCode(ctx, "SAYUR50K").Return(promoCode, nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome,
			constants.CacheKeyProductPrefix+"bayam-segar",
			constants.CacheKeyProductPrefix+"tomat-ceri").
		Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
		PromoCode:       "SAYUR50K",
	})

	require.NoError(t, err)
	assert.True(t, order.DiscountAmount.IsZero())
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("15000")))
	assert.Nil(t, order.PromoCode)
}

func TestOrderService_Checkout_PromoNotFound_FullPrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 1),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promoRepo := mockRepo.NewMockPromoCodeRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(promoRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 1).Return(nil)
		promoRepo.EXPECT().FindActiveByCode(ctx, "TYPO").
			Return(nil, repository.ErrPromoCodeNotFound)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome, constants.CacheKeyProductPrefix+"brokoli").
		Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
		PromoCode:       "TYPO",
	})

	require.NoError(t, err)
	assert.True(t, order.DiscountAmount.IsZero())
	assert.Nil(t, order.PromoCode)
}

func TestOrderService_Checkout_PromoUsageRace_FullPrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 3),
	}
	promoID := uuid.New()
	promoCode := &entity.PromoCode{
		ID:       promoID,
		Code:     "WELCOME10",
		Type:     entity.PromoTypePercentage,
		Value:    decimal.RequireFromString("10"),
		IsActive: true,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		promoRepo := mockRepo.NewMockPromoCodeRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(promoRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 3).Return(nil)
		promoRepo.EXPECT().FindActiveByCode(ctx, "WELCOME10").Return(promoCode, nil)
		// Another checkout claimed the last redemption between the read and
		// the guarded increment.
		promoRepo.EXPECT().IncrementUsage(ctx, promoID).
			Return(repository.ErrPromoUsageExceeded)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome, constants.CacheKeyProductPrefix+"brokoli").
		Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
		PromoCode:       "WELCOME10",
	})

	require.NoError(t, err)
	assert.True(t, order.DiscountAmount.IsZero())
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("60000")))
	assert.Nil(t, order.PromoCode)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
		factory.EXPECT().NewPromoCodeRepository().Return(mockRepo.NewMockPromoCodeRepository(t))
		factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

		cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)
	})

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 1, 5),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(mockRepo.NewMockPromoCodeRepository(t))
		factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 5).
			Return(repository.ErrInsufficientStock)
	})

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	assert.Nil(t, order)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Bayam Segar")
}

func TestOrderService_Checkout_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Bayam Segar", "bayam-segar", "3500", 10, 1),
	}
	items[0].Product.IsActive = false

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
		factory.EXPECT().NewPromoCodeRepository().Return(mockRepo.NewMockPromoCodeRepository(t))
		factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
	})

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_Checkout_OrderNumberCollision_Retries(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 1),
	}

	// First attempt loses the unique order number race and aborts the
	// transaction; the second runs with a fresh number.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateOrderNumber).
		Once()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(mockRepo.NewMockPromoCodeRepository(t))
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 1).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome, constants.CacheKeyProductPrefix+"brokoli").
		Return(nil)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_Checkout_OrderNumberAttemptsExhausted(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrDuplicateOrderNumber).
		Times(3)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNumberExhausted)
}

func TestOrderService_Checkout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		testCartItem(userID, "Brokoli", "brokoli", "20000", 10, 1),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewCartRepository().Return(cartRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewPromoCodeRepository().Return(mockRepo.NewMockPromoCodeRepository(t))
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 1).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	})

	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(assert.AnError)
	fx.cache.EXPECT().
		Delete(ctx, constants.CacheKeyHome, constants.CacheKeyProductPrefix+"brokoli").
		Return(assert.AnError)

	order, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		ShippingAddress: "Jl. Kebon Sayur 12",
	})

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_ListOrders_ClampsPaging(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByUser(ctx, userID, 1, 10).
		Return([]*entity.Order{}, 0, nil)

	page, err := fx.service.ListOrders(ctx, userID, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, UserID: userID}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(expected, nil)

	order, err := fx.service.GetOrder(ctx, userID, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetOrder_ForeignOrderReportsNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	order, err := fx.service.GetOrder(ctx, uuid.New(), orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ConfirmOrder_Pending(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed).
		Return(nil)

	err := fx.service.ConfirmOrder(ctx, orderID)

	assert.NoError(t, err)
}

func TestOrderService_ConfirmOrder_AlreadyShipped_NoOp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	// A replayed confirmation event must not rewind a progressed order.
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusShipped}, nil)

	err := fx.service.ConfirmOrder(ctx, orderID)

	assert.NoError(t, err)
}

func TestOrderService_ConfirmOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	err := fx.service.ConfirmOrder(ctx, orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
