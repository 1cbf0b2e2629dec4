package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ErrDuplicateReview is returned when a (user, product, order) review already exists.
var ErrDuplicateReview = errors.New("review already exists")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserProductOrder retrieves the review a user left for a product in a
	// specific order, if any.
	FindByUserProductOrder(ctx context.Context, userID, productID, orderID uuid.UUID) (*entity.Review, error)

	// ListByProduct retrieves the most recent reviews for a product.
	ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies the rating and comment of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// AggregateByProduct recomputes the review count and mean rating for a
	// product from the review table. The mean is 0 when no reviews remain.
	AggregateByProduct(ctx context.Context, productID uuid.UUID) (count int, average float64, err error)
}
