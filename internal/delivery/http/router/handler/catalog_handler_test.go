package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sayur/internal/domain/entity"
	mockUsecase "sayur/internal/mocks/usecase"
	"sayur/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_GetHome_ForwardsSearchTerm(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/home?search=bayam", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		GetHome(req.Context(), "bayam").
		Return(&usecase.HomePage{
			SearchTerm:    "bayam",
			SearchResults: []*entity.Product{{Name: "Bayam Segar", Slug: "bayam-segar"}},
		}, nil)

	require.NoError(t, handler.GetHome(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"search_term":"bayam"`)
	assert.Contains(t, rec.Body.String(), "bayam-segar")
}

func TestCatalogHandler_GetHome_NoSearchTerm(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		GetHome(req.Context(), "").
		Return(&usecase.HomePage{}, nil)

	require.NoError(t, handler.GetHome(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
