package impl

import (
	"context"
	"errors"
	"fmt"
	"math"

	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/repository"
	"sayur/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

// CreateReview creates a review for a product the user bought in a delivered
// order. The review insert and the product rating aggregate update share one
// transaction.
func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	order, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrReviewOrderInvalid
		}

		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if order.UserID != userID || order.Status != entity.OrderStatusDelivered {
		return nil, domainerrors.ErrReviewOrderInvalid
	}
	if !order.ContainsProduct(input.ProductID) {
		return nil, domainerrors.ErrReviewProductNotInOrder
	}

	review := &entity.Review{
		UserID:    userID,
		ProductID: input.ProductID,
		OrderID:   input.OrderID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		if _, err := reviewRepo.FindByUserProductOrder(ctx, userID, input.ProductID, input.OrderID); err == nil {
			return domainerrors.ErrReviewAlreadyExists
		} else if !errors.Is(err, repository.ErrReviewNotFound) {
			return err
		}

		// The unique constraint still backstops a concurrent insert.
		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrReviewAlreadyExists
			}

			return err
		}

		return refreshProductRating(ctx, repoFactory, input.ProductID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// UpdateReview edits the rating and comment of the user's own review.
func (s *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	var review *entity.Review

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		existing, err := ownedReview(ctx, reviewRepo, userID, reviewID)
		if err != nil {
			return err
		}

		existing.Rating = rating
		existing.Comment = comment
		if err := reviewRepo.Update(ctx, existing); err != nil {
			return err
		}
		review = existing

		return refreshProductRating(ctx, repoFactory, existing.ProductID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes the user's own review and recomputes the product rating.
func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		existing, err := ownedReview(ctx, reviewRepo, userID, reviewID)
		if err != nil {
			return err
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return err
		}

		return refreshProductRating(ctx, repoFactory, existing.ProductID)
	})
}

// ownedReview fetches a review and verifies ownership. A foreign review is
// reported as not found rather than forbidden.
func ownedReview(ctx context.Context, reviewRepo repository.ReviewRepository, userID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	if review.UserID != userID {
		return nil, domainerrors.ErrReviewNotFound
	}

	return review, nil
}

// refreshProductRating recomputes a product's review aggregate inside the
// current transaction. The mean is rounded to one decimal place.
func refreshProductRating(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID) error {
	reviewRepo := repoFactory.NewReviewRepository()
	productRepo := repoFactory.NewProductRepository()

	count, average, err := reviewRepo.AggregateByProduct(ctx, productID)
	if err != nil {
		return err
	}

	rounded := math.Round(average*10) / 10

	if err := productRepo.UpdateRating(ctx, productID, rounded, count); err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}

	return nil
}
