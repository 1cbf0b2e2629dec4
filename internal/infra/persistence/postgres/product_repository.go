// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"sayur/internal/domain/entity"
	domainerrors "sayur/internal/domain/errors"
	"sayur/internal/domain/repository"
	"sayur/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a single active product by its URL slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// List retrieves active products matching the filter plus the total match count.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_active = ?", true)

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		query = query.Where("products.name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.InStockOnly {
		query = query.Where("products.stock > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	switch filter.Sort {
	case repository.ProductSortPriceAsc:
		query = query.Order("products.price ASC")
	case repository.ProductSortPriceDesc:
		query = query.Order("products.price DESC")
	case repository.ProductSortRating:
		query = query.Order("products.rating DESC")
	case repository.ProductSortPopular:
		query = query.Order("products.sold_count DESC")
	default:
		query = query.Order("products.created_at DESC")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Category").
		Offset((page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainList(productModels), total, nil
}

// ListBestSelling retrieves active products ordered by sold count, highest first.
func (repo *productRepository) ListBestSelling(ctx context.Context, limit int) ([]*entity.Product, error) {
	return repo.listActive(ctx, limit, "sold_count DESC", nil)
}

// ListNewest retrieves active products ordered by creation time, newest first.
func (repo *productRepository) ListNewest(ctx context.Context, limit int) ([]*entity.Product, error) {
	return repo.listActive(ctx, limit, "created_at DESC", nil)
}

// ListTopRated retrieves in-stock active products ordered by rating, highest first.
func (repo *productRepository) ListTopRated(ctx context.Context, limit int) ([]*entity.Product, error) {
	inStock := func(q *gorm.DB) *gorm.DB { return q.Where("stock > 0") }

	return repo.listActive(ctx, limit, "rating DESC", inStock)
}

// ListRelated retrieves other active products in the same category.
func (repo *productRepository) ListRelated(ctx context.Context, categoryID uuid.UUID, exclude uuid.UUID, limit int) ([]*entity.Product, error) {
	sameCategory := func(q *gorm.DB) *gorm.DB {
		return q.Where("category_id = ? AND id <> ?", categoryID, exclude)
	}

	return repo.listActive(ctx, limit, "sold_count DESC", sameCategory)
}

func (repo *productRepository) listActive(ctx context.Context, limit int, order string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true)
	if scope != nil {
		query = scope(query)
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Category").
		Order(order).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomainList(productModels), nil
}

// DecrementStock atomically decrements stock and increments sold count by
// quantity. The WHERE guard makes the decrement conditional on enough stock
// remaining, so concurrent checkouts can never oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", quantity),
			"sold_count": gorm.Expr("sold_count + ?", quantity),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement product stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// UpdateRating sets the derived rating aggregate for a product.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, totalReviews int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":        rating,
			"total_reviews": totalReviews,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product rating")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		CategoryID:   data.CategoryID,
		Category:     toCategoryDomain(data.Category),
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Price:        data.Price,
		Stock:        data.Stock,
		Images:       data.Images,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		SoldCount:    data.SoldCount,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toProductDomainList(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
