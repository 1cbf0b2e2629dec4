package handler

import (
	"net/http"
	"strconv"

	"sayur/internal/delivery/http/response"
	"sayur/internal/domain/repository"
	"sayur/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for public catalog handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetHome handles the storefront home page request, with an optional search
// term that swaps the curated sections for matching products.
func (h *CatalogHandler) GetHome(c echo.Context) error {
	home, err := h.uc.GetHome(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, home, "")
}

// ListCategories handles the category listing request.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListProducts handles the filtered product listing request.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		CategorySlug: c.QueryParam("category"),
		Search:       c.QueryParam("search"),
		Sort:         repository.ProductSort(c.QueryParam("sort")),
		InStockOnly:  c.QueryParam("in_stock") == "true",
		Page:         intQueryParam(c, "page"),
		PerPage:      intQueryParam(c, "per_page"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "min_price must be a number")
		}
		filter.MinPrice = &price
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "max_price must be a number")
		}
		filter.MaxPrice = &price
	}

	page, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetProductDetail handles the product detail request by slug.
func (h *CatalogHandler) GetProductDetail(c echo.Context) error {
	detail, err := h.uc.GetProductDetail(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// intQueryParam parses a non-negative integer query parameter, 0 when absent
// or malformed.
func intQueryParam(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value < 0 {
		return 0
	}

	return value
}
