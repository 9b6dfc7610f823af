package routes

import (
	"github.com/RoboMarket/robomarket-backend/controllers/category_controller"
	"github.com/RoboMarket/robomarket-backend/controllers/filter_controller"
	"github.com/RoboMarket/robomarket-backend/controllers/product_controller"
	"github.com/RoboMarket/robomarket-backend/controllers/session_controller"
	"github.com/RoboMarket/robomarket-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Product routes (public, no auth required)
	products := router.Group("/products")
	{
		products.GET("", product_controller.GetProducts)        // List with filters
		products.GET("/:id", product_controller.GetProductByID) // Single product
	}

	// Filter metadata for the storefront sidebar
	router.GET("/filters", filter_controller.GetFilterMetadata)

	// Category navigation
	router.GET("/categories", category_controller.GetCategories)

	// Session contract (requires a valid session token)
	me := router.Group("/me")
	me.Use(middleware.AuthMiddleware())
	me.GET("", session_controller.GetMe)
}
