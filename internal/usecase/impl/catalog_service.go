package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sayur/config"
	deliveryctx "sayur/internal/delivery/context"
	"sayur/internal/domain/constants"
	"sayur/internal/domain/entity"
	"sayur/internal/domain/repository"
	"sayur/internal/domain/service"
	"sayur/internal/usecase"
)

// detailReviewLimit bounds the recent reviews embedded in a product detail.
const detailReviewLimit = 10

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	cache        service.ProductCache
	cacheTTL     time.Duration
	catalogCfg   *config.CatalogConfig
	logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	cache service.ProductCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		cache:        cache,
		cacheTTL:     cfg.Redis.CacheTTL,
		catalogCfg:   cfg.Catalog,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliveryctx.GetLoggerOrDefault(ctx, s.logger)
}

// GetHome returns the home page sections, served from cache when possible.
// Cache failures degrade to a database read. A non-empty search term replaces
// the curated sections with name-matched products and bypasses the cache.
func (s *catalogService) GetHome(ctx context.Context, search string) (*usecase.HomePage, error) {
	if search != "" {
		return s.buildSearchHome(ctx, search)
	}

	if payload, err := s.cache.Get(ctx, constants.CacheKeyHome); err != nil {
		s.log(ctx).Warn("home cache read failed", slog.Any("error", err))
	} else if payload != nil {
		var home usecase.HomePage
		if err := json.Unmarshal(payload, &home); err == nil {
			return &home, nil
		}
		s.log(ctx).Warn("home cache payload corrupt, falling back to database")
	}

	home, err := s.buildHome(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(home); err == nil {
		if err := s.cache.Set(ctx, constants.CacheKeyHome, payload, s.cacheTTL); err != nil {
			s.log(ctx).Warn("home cache write failed", slog.Any("error", err))
		}
	}

	return home, nil
}

// buildSearchHome resolves a home search: products whose name contains the
// term, best sellers first, capped at the configured search limit.
func (s *catalogService) buildSearchHome(ctx context.Context, term string) (*usecase.HomePage, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	results, _, err := s.productRepo.List(ctx, repository.ProductFilter{
		Search:  term,
		Sort:    repository.ProductSortPopular,
		Page:    1,
		PerPage: s.catalogCfg.SearchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return &usecase.HomePage{
		Categories:    categories,
		SearchTerm:    term,
		SearchResults: results,
	}, nil
}

func (s *catalogService) buildHome(ctx context.Context) (*usecase.HomePage, error) {
	sectionSize := s.catalogCfg.HomeSectionSize

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	bestSelling, err := s.productRepo.ListBestSelling(ctx, sectionSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list best selling products: %w", err)
	}

	newest, err := s.productRepo.ListNewest(ctx, sectionSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list newest products: %w", err)
	}

	topRated, err := s.productRepo.ListTopRated(ctx, sectionSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list top rated products: %w", err)
	}

	return &usecase.HomePage{
		Categories:  categories,
		BestSelling: bestSelling,
		Newest:      newest,
		TopRated:    topRated,
	}, nil
}

// ListCategories returns every category.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// ListProducts returns a filtered, sorted, paginated product listing. Category
// slugs are validated so an unknown category is a not-found rather than an
// empty page.
func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*usecase.ProductPage, error) {
	if filter.CategorySlug != "" {
		if _, err := s.categoryRepo.FindBySlug(ctx, filter.CategorySlug); err != nil {
			return nil, err
		}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = s.catalogCfg.DefaultPerPage
	}
	if filter.PerPage > s.catalogCfg.MaxPerPage {
		filter.PerPage = s.catalogCfg.MaxPerPage
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		PerPage:  filter.PerPage,
	}, nil
}

// GetProductDetail returns a product by slug with related products and recent
// reviews, served from cache when possible.
func (s *catalogService) GetProductDetail(ctx context.Context, slug string) (*usecase.ProductDetail, error) {
	cacheKey := constants.CacheKeyProductPrefix + slug

	if payload, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.log(ctx).Warn("product cache read failed", slog.String("slug", slug), slog.Any("error", err))
	} else if payload != nil {
		var detail usecase.ProductDetail
		if err := json.Unmarshal(payload, &detail); err == nil {
			return &detail, nil
		}
	}

	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	related, err := s.productRepo.ListRelated(ctx, product.CategoryID, product.ID, s.catalogCfg.RelatedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related products: %w", err)
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, product.ID, detailReviewLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list product reviews: %w", err)
	}

	detail := &usecase.ProductDetail{
		Product: product,
		Related: related,
		Reviews: reviews,
	}

	if payload, err := json.Marshal(detail); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL); err != nil {
			s.log(ctx).Warn("product cache write failed", slog.String("slug", slug), slog.Any("error", err))
		}
	}

	return detail, nil
}
