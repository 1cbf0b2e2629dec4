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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	t         *testing.T
	service   usecase.ReviewUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	service := NewReviewService(txManager, orderRepo)

	return reviewServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func (fx reviewServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func deliveredOrder(userID, productID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.OrderStatusDelivered,
		Items: []*entity.OrderItem{
			{ProductID: productID, Quantity: 1},
		},
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		reviewRepo.EXPECT().
			FindByUserProductOrder(ctx, userID, productID, order.ID).
			Return(nil, repository.ErrReviewNotFound)
		reviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Return(nil)
		// 4.25 rounds to 4.3 with one decimal place.
		reviewRepo.EXPECT().AggregateByProduct(ctx, productID).Return(4, 4.25, nil)
		productRepo.EXPECT().UpdateRating(ctx, productID, 4.3, 4).Return(nil)
	})

	review, err := fx.service.CreateReview(ctx, userID, &usecase.ReviewInput{
		ProductID: productID,
		OrderID:   order.ID,
		Rating:    5,
		Comment:   "Sayurnya segar banget",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, productID, review.ProductID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.ReviewInput{
		ProductID: uuid.New(),
		OrderID:   uuid.New(),
		Rating:    6,
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_CreateReview_OrderNotDelivered(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)
	order.Status = entity.OrderStatusShipped

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CreateReview(ctx, userID, &usecase.ReviewInput{
		ProductID: productID,
		OrderID:   order.ID,
		Rating:    4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrReviewOrderInvalid)
}

func TestReviewService_CreateReview_ForeignOrder(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	order := deliveredOrder(uuid.New(), productID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CreateReview(ctx, uuid.New(), &usecase.ReviewInput{
		ProductID: productID,
		OrderID:   order.ID,
		Rating:    4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrReviewOrderInvalid)
}

func TestReviewService_CreateReview_ProductNotInOrder(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := deliveredOrder(userID, uuid.New())

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.CreateReview(ctx, userID, &usecase.ReviewInput{
		ProductID: uuid.New(),
		OrderID:   order.ID,
		Rating:    4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrReviewProductNotInOrder)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewReviewRepository().Return(reviewRepo)

		reviewRepo.EXPECT().
			FindByUserProductOrder(ctx, userID, productID, order.ID).
			Return(&entity.Review{ID: uuid.New(), UserID: userID}, nil)
	})

	_, err := fx.service.CreateReview(ctx, userID, &usecase.ReviewInput{
		ProductID: productID,
		OrderID:   order.ID,
		Rating:    4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_CreateReview_ConcurrentDuplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	order := deliveredOrder(userID, productID)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	// The pre-check sees nothing, but a concurrent insert wins the race and
	// the unique constraint fires on Create.
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewReviewRepository().Return(reviewRepo)

		reviewRepo.EXPECT().
			FindByUserProductOrder(ctx, userID, productID, order.ID).
			Return(nil, repository.ErrReviewNotFound)
		reviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Return(repository.ErrDuplicateReview)
	})

	_, err := fx.service.CreateReview(ctx, userID, &usecase.ReviewInput{
		ProductID: productID,
		OrderID:   order.ID,
		Rating:    4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	existing := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Rating:    2,
		Comment:   "Kurang segar",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		reviewRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Review")).
			Return(nil)
		reviewRepo.EXPECT().AggregateByProduct(ctx, productID).Return(2, 4.0, nil)
		productRepo.EXPECT().UpdateRating(ctx, productID, 4.0, 2).Return(nil)
	})

	review, err := fx.service.UpdateReview(ctx, userID, existing.ID, 4, "Ternyata enak")

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Ternyata enak", review.Comment)
}

func TestReviewService_UpdateReview_ForeignReviewReportsNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	existing := &entity.Review{
		ID:     uuid.New(),
		UserID: uuid.New(),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)

		factory.EXPECT().NewReviewRepository().Return(reviewRepo)

		reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	})

	_, err := fx.service.UpdateReview(ctx, uuid.New(), existing.ID, 4, "")

	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	existing := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Rating:    5,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewReviewRepository().Return(reviewRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		reviewRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)
		// Last review removed; the aggregate resets to zero.
		reviewRepo.EXPECT().AggregateByProduct(ctx, productID).Return(0, 0.0, nil)
		productRepo.EXPECT().UpdateRating(ctx, productID, 0.0, 0).Return(nil)
	})

	err := fx.service.DeleteReview(ctx, userID, existing.ID)

	assert.NoError(t, err)
}
