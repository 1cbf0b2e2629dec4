package handler

import (
	"net/http"

	"sayur/internal/delivery/http/middleware"
	"sayur/internal/delivery/http/response"
	"sayur/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromoPreviewRequest is the payload for previewing a promo code.
type PromoPreviewRequest struct {
	Code string `json:"code" validate:"required"`
}

// PromoHandler holds dependencies for promo code handlers.
type PromoHandler struct {
	uc usecase.PromoUsecase
}

// NewPromoHandler is the constructor for PromoHandler, injected by Fx.
func NewPromoHandler(uc usecase.PromoUsecase) *PromoHandler {
	return &PromoHandler{uc: uc}
}

// Preview handles the promo preview request against the current cart.
func (h *PromoHandler) Preview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req PromoPreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	preview, err := h.uc.Preview(c.Request().Context(), userID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, preview, "")
}
