package handler

import (
	"net/http"

	"sayur/internal/delivery/http/middleware"
	"sayur/internal/delivery/http/response"
	"sayur/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddWishlistItemRequest is the payload for wishing for a product.
type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// GetWishlist handles the wishlist listing request.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	items, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// AddItem handles the add-to-wishlist request.
func (h *WishlistHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req AddWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "product_id must be a UUID")
	}

	item, created, err := h.uc.AddItem(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !created {
		return response.Success(c, http.StatusOK, item, "Product already in wishlist")
	}

	return response.Success(c, http.StatusCreated, item, "Product added to wishlist")
}

// RemoveItem handles the remove-from-wishlist request.
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "product id must be a UUID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product removed from wishlist"}, "Product removed from wishlist")
}
