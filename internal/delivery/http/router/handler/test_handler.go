package handler

import (
	"net/http"

	"sayur/internal/delivery/http/middleware"
	"sayur/internal/delivery/http/response"
	"sayur/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MintTokenRequest is the payload for minting a test access token.
type MintTokenRequest struct {
	UserID string `json:"user_id"` // Optional; a random user is minted when absent.
}

// TestHandler handles test endpoints for middleware validation. Its routes are
// only registered when test routes are enabled in configuration.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// MintToken issues an access token for integration testing without a full
// account system.
func (h *TestHandler) MintToken(c echo.Context) error {
	var req MintTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "user_id must be a UUID")
		}
		userID = parsed
	}

	token, err := h.tokenSvc.GenerateAccessToken(userID)
	if err != nil {
		return response.InternalServerError(c, "TOKEN_ERROR", "Failed to generate token")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":      userID,
		"access_token": token,
		"expires_in":   int(h.tokenSvc.GetAccessTokenDuration().Seconds()),
	}, "Token minted")
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"status":  "authenticated",
	}, "Authentication middleware test successful")
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "Public endpoint test successful")
}
