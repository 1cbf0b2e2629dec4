// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the guarded decrement
// would take the stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductSort enumerates the supported catalog sort keys.
type ProductSort string

const (
	ProductSortNewest    ProductSort = "newest"
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortRating    ProductSort = "rating"
	ProductSortPopular   ProductSort = "popular"
)

// ProductFilter captures the catalog browse query parameters.
// Zero values mean "no constraint".
type ProductFilter struct {
	CategorySlug string
	Search       string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStockOnly  bool
	Sort         ProductSort
	Page         int
	PerPage      int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single active product by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List retrieves active products matching the filter plus the total match count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// ListBestSelling retrieves active products ordered by sold count, highest first.
	ListBestSelling(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListNewest retrieves active products ordered by creation time, newest first.
	ListNewest(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListTopRated retrieves in-stock active products ordered by rating, highest first.
	ListTopRated(ctx context.Context, limit int) ([]*entity.Product, error)

	// ListRelated retrieves other active products in the same category.
	ListRelated(ctx context.Context, categoryID uuid.UUID, exclude uuid.UUID, limit int) ([]*entity.Product, error)

	// DecrementStock atomically decrements stock and increments sold count by
	// quantity, but only when enough stock remains. Returns ErrInsufficientStock
	// when the conditional update matches no row.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// UpdateRating sets the derived rating aggregate for a product.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int) error
}
