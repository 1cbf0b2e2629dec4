package repository

import (
	"context"
	"errors"

	"sayur/internal/domain/entity"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
// Categories are read-only to the storefront workflow.
type CategoryRepository interface {
	// FindAll retrieves every category, ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindBySlug retrieves a single category by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
}
