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

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart retrieves the user's cart items with the live subtotal.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.Cart, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	return &usecase.Cart{
		Items:    items,
		Subtotal: entity.CartSubtotal(items).String(),
	}, nil
}

// AddItem adds a product to the cart. Adding a product already in the cart
// bumps its quantity instead of creating a second row. The combined quantity
// is checked against current stock.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, fmt.Errorf("failed to find existing cart item: %w", err)
	}

	requested := quantity
	if existing != nil {
		requested += existing.Quantity
	}
	if !product.InStock(requested) {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("only %d of %s available", product.Stock, product.Name))
	}

	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(ctx, existing.ID, requested); err != nil {
			return nil, fmt.Errorf("failed to update cart quantity: %w", err)
		}

		return s.cartRepo.FindByID(ctx, existing.ID)
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}
	item.Product = product

	return item, nil
}

// UpdateItem sets the quantity of a cart item owned by the user.
func (s *cartService) UpdateItem(ctx context.Context, userID, cartItemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	item, err := s.ownedItem(ctx, userID, cartItemID)
	if err != nil {
		return nil, err
	}

	if item.Product != nil && !item.Product.InStock(quantity) {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("only %d of %s available", item.Product.Stock, item.Product.Name))
	}

	if err := s.cartRepo.UpdateQuantity(ctx, cartItemID, quantity); err != nil {
		return nil, fmt.Errorf("failed to update cart quantity: %w", err)
	}

	item.Quantity = quantity

	return item, nil
}

// RemoveItem removes a cart item owned by the user.
func (s *cartService) RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error {
	if _, err := s.ownedItem(ctx, userID, cartItemID); err != nil {
		return err
	}

	if err := s.cartRepo.Delete(ctx, cartItemID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return nil
}

// ownedItem fetches a cart item and verifies ownership. A foreign item is
// reported as not found rather than forbidden, to avoid leaking its existence.
func (s *cartService) ownedItem(ctx context.Context, userID, cartItemID uuid.UUID) (*entity.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}

	if item.UserID != userID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}
