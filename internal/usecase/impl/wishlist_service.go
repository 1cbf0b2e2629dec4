package impl

import (
	"context"
	"errors"
	"fmt"

	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/repository"
	"sayur/internal/usecase"

	"github.com/google/uuid"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist retrieves the user's wishlist, newest first.
func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	items, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	return items, nil
}

// AddItem adds a product to the user's wishlist. Re-adding a product that is
// already wished for returns the existing item unchanged.
func (s *wishlistService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, bool, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, false, domainerrors.ErrProductNotFound
		}

		return nil, false, fmt.Errorf("failed to find product: %w", err)
	}
	if !product.IsActive {
		return nil, false, domainerrors.ErrProductNotFound
	}

	if existing, err := s.wishlistRepo.FindByUserAndProduct(ctx, userID, productID); err == nil {
		existing.Product = product

		return existing, false, nil
	} else if !errors.Is(err, repository.ErrWishlistItemNotFound) {
		return nil, false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, false, fmt.Errorf("failed to create wishlist item: %w", err)
	}
	item.Product = product

	return item, true, nil
}

// RemoveItem removes a product from the user's wishlist.
func (s *wishlistService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	item, err := s.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrWishlistItemNotFound
		}

		return fmt.Errorf("failed to find wishlist item: %w", err)
	}

	if err := s.wishlistRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	return nil
}
