// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler   *handler.ProductHandler
	CartHandler      *handler.CartHandler
	SearchHandler    *handler.SearchHandler
	AuthHandler      *handler.AuthHandler
	CheckoutHandler  *handler.CheckoutHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler   *handler.ProductHandler
	cartHandler      *handler.CartHandler
	searchHandler    *handler.SearchHandler
	authHandler      *handler.AuthHandler
	checkoutHandler  *handler.CheckoutHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:   params.ProductHandler,
		cartHandler:      params.CartHandler,
		searchHandler:    params.SearchHandler,
		authHandler:      params.AuthHandler,
		checkoutHandler:  params.CheckoutHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog browsing routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("/featured", r.productHandler.Featured)
		productGroup.GET("/new", r.productHandler.NewArrivals)
		productGroup.GET("/sale", r.productHandler.OnSale)
		productGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productGroup.GET("/category/:category/facets", r.productHandler.Facets)
		productGroup.GET("/:id", r.productHandler.Get)
	}

	// Search route
	e.GET("/search", r.searchHandler.Search)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.View)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/open", r.cartHandler.Open)
		cartGroup.POST("/close", r.cartHandler.Close)
	}

	// Checkout routes
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
		checkoutGroup.GET("/orders", r.checkoutHandler.Orders)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Admin dashboard requires authentication and the "admin" role
	adminGroup := e.Group("/dashboard/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/stats", r.dashboardHandler.AdminStats)
		adminGroup.POST("/products", r.productHandler.Create)
		adminGroup.PUT("/products/:id", r.productHandler.Update)
		adminGroup.DELETE("/products/:id", r.productHandler.Delete)
	}

	// Seller dashboard requires authentication and the "seller" role
	sellerGroup := e.Group("/dashboard/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole("seller"))
	{
		sellerGroup.GET("/stats", r.dashboardHandler.SellerStats)
	}
}
