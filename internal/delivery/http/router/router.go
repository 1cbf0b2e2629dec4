// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sayur/config"
	"sayur/internal/delivery/http/middleware"
	"sayur/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	PromoHandler    *handler.PromoHandler
	ReviewHandler   *handler.ReviewHandler
	WishlistHandler *handler.WishlistHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	promoHandler    *handler.PromoHandler
	reviewHandler   *handler.ReviewHandler
	wishlistHandler *handler.WishlistHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		promoHandler:    params.PromoHandler,
		reviewHandler:   params.ReviewHandler,
		wishlistHandler: params.WishlistHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health-check", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public catalog routes
	apiV1.GET("/home", r.catalogHandler.GetHome)
	apiV1.GET("/categories", r.catalogHandler.ListCategories)
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:slug", r.catalogHandler.GetProductDetail)

	// Cart routes require authentication
	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	// Promo preview against the current cart
	promoGroup := apiV1.Group("/promo")
	promoGroup.Use(r.authMiddleware.Authenticate)
	{
		promoGroup.POST("/preview", r.promoHandler.Preview)
	}

	// Checkout and order history routes
	orderGroup := apiV1.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Review routes
	reviewGroup := apiV1.Group("/reviews")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.reviewHandler.CreateReview)
		reviewGroup.PUT("/:id", r.reviewHandler.UpdateReview)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	// Wishlist routes
	wishlistGroup := apiV1.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("", r.wishlistHandler.AddItem)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.RemoveItem)
	}
}

// RegisterTestRoutes sets up endpoints for exercising middleware in
// integration tests. They are skipped unless enabled in configuration.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	{
		testGroup.POST("/token", r.testHandler.MintToken)
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
