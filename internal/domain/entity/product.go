// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a single item for sale in the catalog.
type Product struct {
	ID           uuid.UUID       `json:"id"`            // The Global Unique Identifier (GUID) for the product.
	CategoryID   uuid.UUID       `json:"category_id"`   // The ID of the category this product belongs to.
	Category     *Category       `json:"category"`      // The category record, when loaded.
	Name         string          `json:"name"`          // The display name of the product.
	Slug         string          `json:"slug"`          // URL-safe unique identifier used in product pages.
	Description  string          `json:"description"`   // The full product description.
	Price        decimal.Decimal `json:"price"`         // The current unit price.
	Stock        int             `json:"stock"`         // Units currently available for purchase. Never negative.
	Images       []string        `json:"images"`        // Image URLs for the product page.
	Rating       float64         `json:"rating"`        // Average review rating, 0-5, one decimal place.
	TotalReviews int             `json:"total_reviews"` // Number of reviews contributing to Rating.
	SoldCount    int             `json:"sold_count"`    // Total units sold across all orders.
	IsActive     bool            `json:"is_active"`     // Inactive products are hidden from the catalog.
	CreatedAt    time.Time       `json:"created_at"`    // Timestamp of when the product was created.
	UpdatedAt    time.Time       `json:"updated_at"`    // Timestamp of the last modification.
}

// InStock reports whether at least the requested quantity is available.
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity
}
