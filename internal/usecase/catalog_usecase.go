package usecase

import (
	"context"

	"sayur/internal/domain/entity"
	"sayur/internal/domain/repository"
)

// HomePage bundles the curated product sections shown on the storefront home.
// When a search term is present the curated sections are replaced by the
// matching products, ordered by sold count.
type HomePage struct {
	Categories    []*entity.Category `json:"categories"`
	BestSelling   []*entity.Product  `json:"best_selling,omitempty"`
	Newest        []*entity.Product  `json:"newest,omitempty"`
	TopRated      []*entity.Product  `json:"top_rated,omitempty"`
	SearchTerm    string             `json:"search_term,omitempty"`
	SearchResults []*entity.Product  `json:"search_results,omitempty"`
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// ProductDetail is a product with its related products and recent reviews.
type ProductDetail struct {
	Product *entity.Product   `json:"product"`
	Related []*entity.Product `json:"related"`
	Reviews []*entity.Review  `json:"reviews"`
}

// CatalogUsecase defines the interface for the public catalog use cases
type CatalogUsecase interface {
	// GetHome returns the cached home page sections, or name-matched search
	// results when a search term is given
	GetHome(ctx context.Context, search string) (*HomePage, error)

	// ListCategories returns every category
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListProducts returns a filtered, sorted, paginated product listing
	ListProducts(ctx context.Context, filter repository.ProductFilter) (*ProductPage, error)

	// GetProductDetail returns a product by slug with related products and recent reviews
	GetProductDetail(ctx context.Context, slug string) (*ProductDetail, error)
}
