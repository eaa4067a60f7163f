// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pricemap/config"
	"pricemap/internal/delivery/api/middleware"
	"pricemap/internal/delivery/api/router/handler"
	"pricemap/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler    *handler.ShopHandler
	ReportHandler  *handler.ReportHandler
	PriceHandler   *handler.PriceHandler
	AdminHandler   *handler.AdminHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler    *handler.ShopHandler
	reportHandler  *handler.ReportHandler
	priceHandler   *handler.PriceHandler
	adminHandler   *handler.AdminHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:    params.ShopHandler,
		reportHandler:  params.ReportHandler,
		priceHandler:   params.PriceHandler,
		adminHandler:   params.AdminHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Shop discovery routes; static segments are registered before /:id
	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.GET("/nearby", r.shopHandler.FindNearbyShops)
		shopsGroup.GET("/declared", r.shopHandler.ListDeclaredShops)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
		shopsGroup.GET("/:id/products", r.shopHandler.ListShopProducts)
		shopsGroup.GET("/:id/qr", r.shopHandler.GenerateShopQR)
		shopsGroup.POST("/:id/declare", r.shopHandler.DeclareShop)
	}

	// Price report lifecycle routes
	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.POST("", r.reportHandler.SubmitReport)
		reportsGroup.GET("/mine", r.reportHandler.ListUserReports)
		reportsGroup.PUT("/:id", r.reportHandler.ModifyReport)
		reportsGroup.DELETE("/:id", r.reportHandler.UndoReport)
		reportsGroup.GET("/:id/can-modify", r.reportHandler.CanModify)
	}

	// Product-wide price queries
	pricesGroup := apiV1.Group("/prices")
	{
		pricesGroup.GET("/products/:productId", r.priceHandler.GetProductAverage)
		pricesGroup.GET("/range", r.priceHandler.FindAveragesInRange)
		pricesGroup.GET("/cheapest", r.priceHandler.FindCheapest)
	}

	// Moderation routes (require admin role)
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/shops/:id/verify", r.adminHandler.VerifyShop)
		adminGroup.POST("/shops/:id/reject", r.adminHandler.RejectShop)
		adminGroup.POST("/shops/:id/suspend", r.adminHandler.SuspendShop)
		adminGroup.PUT("/shops/:id/active", r.adminHandler.SetShopActive)
		adminGroup.POST("/prices/refresh", r.adminHandler.RefreshPrices)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/verify", r.testHandler.TestVerifyLocation)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
