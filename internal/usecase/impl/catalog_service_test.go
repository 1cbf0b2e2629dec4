package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"sayur/config"
	"sayur/internal/domain/constants"
	"sayur/internal/domain/entity"
	"sayur/internal/domain/repository"
	mockRepo "sayur/internal/mocks/repository"
	mockService "sayur/internal/mocks/service"
	"sayur/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	reviewRepo   *mockRepo.MockReviewRepository
	cache        *mockService.MockProductCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	cache := mockService.NewMockProductCache(t)
	cfg := &config.Config{
		Redis: &config.RedisConfig{CacheTTL: 5 * time.Minute},
		Catalog: &config.CatalogConfig{
			HomeSectionSize: 8,
			SearchLimit:     12,
			RelatedLimit:    4,
			DefaultPerPage:  12,
			MaxPerPage:      48,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCatalogService(productRepo, categoryRepo, reviewRepo, cache, cfg, logger)

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		cache:        cache,
	}
}

func testProduct(name, slug string) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Slug:     slug,
		Price:    decimal.RequireFromString("10000"),
		Stock:    5,
		IsActive: true,
	}
}

func TestCatalogService_GetHome_CacheMiss(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Name: "Sayuran Daun", Slug: "sayuran-daun"}}
	bestSelling := []*entity.Product{testProduct("Bayam Segar", "bayam-segar")}
	newest := []*entity.Product{testProduct("Wortel Organik", "wortel-organik")}
	topRated := []*entity.Product{testProduct("Brokoli", "brokoli")}

	fx.cache.EXPECT().Get(ctx, constants.CacheKeyHome).Return(nil, nil)
	fx.categoryRepo.EXPECT().FindAll(ctx).Return(categories, nil)
	fx.productRepo.EXPECT().ListBestSelling(ctx, 8).Return(bestSelling, nil)
	fx.productRepo.EXPECT().ListNewest(ctx, 8).Return(newest, nil)
	fx.productRepo.EXPECT().ListTopRated(ctx, 8).Return(topRated, nil)
	fx.cache.EXPECT().
		Set(ctx, constants.CacheKeyHome, mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(nil)

	home, err := fx.service.GetHome(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, categories, home.Categories)
	assert.Equal(t, bestSelling, home.BestSelling)
	assert.Equal(t, newest, home.Newest)
	assert.Equal(t, topRated, home.TopRated)
}

func TestCatalogService_GetHome_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	cached := &usecase.HomePage{
		Categories: []*entity.Category{{ID: uuid.New(), Name: "Sayuran Daun"}},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	fx.cache.EXPECT().Get(ctx, constants.CacheKeyHome).Return(payload, nil)

	home, err := fx.service.GetHome(ctx, "")

	require.NoError(t, err)
	require.Len(t, home.Categories, 1)
	assert.Equal(t, "Sayuran Daun", home.Categories[0].Name)
}

func TestCatalogService_GetHome_CacheErrorFallsBack(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, constants.CacheKeyHome).Return(nil, assert.AnError)
	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{}, nil)
	fx.productRepo.EXPECT().ListBestSelling(ctx, 8).Return([]*entity.Product{}, nil)
	fx.productRepo.EXPECT().ListNewest(ctx, 8).Return([]*entity.Product{}, nil)
	fx.productRepo.EXPECT().ListTopRated(ctx, 8).Return([]*entity.Product{}, nil)
	fx.cache.EXPECT().
		Set(ctx, constants.CacheKeyHome, mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(assert.AnError)

	home, err := fx.service.GetHome(ctx, "")

	require.NoError(t, err)
	assert.NotNil(t, home)
}

func TestCatalogService_GetHome_SearchBypassesCacheAndSections(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Name: "Sayuran Daun", Slug: "sayuran-daun"}}
	results := []*entity.Product{testProduct("Bayam Segar", "bayam-segar")}

	fx.categoryRepo.EXPECT().FindAll(ctx).Return(categories, nil)
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{
			Search:  "bayam",
			Sort:    repository.ProductSortPopular,
			Page:    1,
			PerPage: 12,
		}).
		Return(results, int64(1), nil)

	home, err := fx.service.GetHome(ctx, "bayam")

	require.NoError(t, err)
	assert.Equal(t, categories, home.Categories)
	assert.Equal(t, "bayam", home.SearchTerm)
	assert.Equal(t, results, home.SearchResults)
	assert.Empty(t, home.BestSelling)
	assert.Empty(t, home.Newest)
	assert.Empty(t, home.TopRated)
}

func TestCatalogService_GetHome_SearchError(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{}, nil)
	fx.productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ProductFilter")).
		Return(nil, int64(0), assert.AnError)

	home, err := fx.service.GetHome(ctx, "bayam")

	require.Error(t, err)
	assert.Nil(t, home)
}

func TestCatalogService_ListProducts_DefaultsApplied(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{testProduct("Bayam Segar", "bayam-segar")}

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Page: 1, PerPage: 12}).
		Return(products, 1, nil)

	page, err := fx.service.ListProducts(ctx, repository.ProductFilter{})

	require.NoError(t, err)
	assert.Equal(t, products, page.Products)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.PerPage)
}

func TestCatalogService_ListProducts_PerPageClamped(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{Page: 2, PerPage: 48}).
		Return([]*entity.Product{}, 0, nil)

	page, err := fx.service.ListProducts(ctx, repository.ProductFilter{Page: 2, PerPage: 500})

	require.NoError(t, err)
	assert.Equal(t, 48, page.PerPage)
}

func TestCatalogService_ListProducts_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindBySlug(ctx, "buah-import").
		Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.ListProducts(ctx, repository.ProductFilter{CategorySlug: "buah-import"})

	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCatalogService_ListProducts_KnownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Slug: "sayuran-daun"}

	fx.categoryRepo.EXPECT().FindBySlug(ctx, "sayuran-daun").Return(category, nil)
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilter{CategorySlug: "sayuran-daun", Page: 1, PerPage: 12}).
		Return([]*entity.Product{}, 0, nil)

	_, err := fx.service.ListProducts(ctx, repository.ProductFilter{CategorySlug: "sayuran-daun"})

	assert.NoError(t, err)
}

func TestCatalogService_GetProductDetail_CacheMiss(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct("Bayam Segar", "bayam-segar")
	product.CategoryID = uuid.New()
	related := []*entity.Product{testProduct("Kangkung", "kangkung")}
	reviews := []*entity.Review{{ID: uuid.New(), ProductID: product.ID, Rating: 5}}

	fx.cache.EXPECT().Get(ctx, constants.CacheKeyProductPrefix+"bayam-segar").Return(nil, nil)
	fx.productRepo.EXPECT().FindBySlug(ctx, "bayam-segar").Return(product, nil)
	fx.productRepo.EXPECT().
		ListRelated(ctx, product.CategoryID, product.ID, 4).
		Return(related, nil)
	fx.reviewRepo.EXPECT().ListByProduct(ctx, product.ID, 10).Return(reviews, nil)
	fx.cache.EXPECT().
		Set(ctx, constants.CacheKeyProductPrefix+"bayam-segar", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(nil)

	detail, err := fx.service.GetProductDetail(ctx, "bayam-segar")

	require.NoError(t, err)
	assert.Equal(t, product, detail.Product)
	assert.Equal(t, related, detail.Related)
	assert.Equal(t, reviews, detail.Reviews)
}

func TestCatalogService_GetProductDetail_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, constants.CacheKeyProductPrefix+"hilang").Return(nil, nil)
	fx.productRepo.EXPECT().
		FindBySlug(ctx, "hilang").
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProductDetail(ctx, "hilang")

	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: uuid.New(), Name: "Sayuran Daun"},
		{ID: uuid.New(), Name: "Umbi-umbian"},
	}

	fx.categoryRepo.EXPECT().FindAll(ctx).Return(categories, nil)

	result, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, categories, result)
}
