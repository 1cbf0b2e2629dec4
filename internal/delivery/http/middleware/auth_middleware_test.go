package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sayur/config"
	"sayur/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	return cfg
}

func runAuthenticated(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	cfg := testAuthConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID uuid.UUID
	var called bool
	handler := m.Authenticate(func(c echo.Context) error {
		gotUserID, called = GetUserID(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, gotUserID, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testAuthConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokenSvc.GenerateAccessToken(userID)
	require.NoError(t, err)

	rec, gotUserID, called := runAuthenticated(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, called := runAuthenticated(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, _, called := runAuthenticated(t, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	rec, _, called := runAuthenticated(t, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestGetUserID_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := GetUserID(c)

	assert.False(t, ok)
}
