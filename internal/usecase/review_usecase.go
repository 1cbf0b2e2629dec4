package usecase

import (
	"context"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries the user-supplied review fields.
type ReviewInput struct {
	ProductID uuid.UUID `json:"product_id"`
	OrderID   uuid.UUID `json:"order_id"`
	Rating    int       `json:"rating"` // Integer 1-5.
	Comment   string    `json:"comment"`
}

// ReviewUsecase defines the interface for product review use cases
type ReviewUsecase interface {
	// CreateReview creates a review for a product purchased in one of the
	// user's delivered orders
	CreateReview(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// UpdateReview edits the rating and comment of the user's own review
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, rating int, comment string) (*entity.Review, error)

	// DeleteReview removes the user's own review
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}
