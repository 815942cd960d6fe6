package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/softwareInkhub/bagicha-cms-backend/controllers/ecommerce/category_controller"
	store_product "github.com/softwareInkhub/bagicha-cms-backend/controllers/ecommerce/product_controller"
	store_settings "github.com/softwareInkhub/bagicha-cms-backend/controllers/ecommerce/settings_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/suggestions", store_product.GetSearchSuggestions)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	store.GET("/categories", store_category.GetCategories)
	store.GET("/settings", store_settings.GetStorefrontSettings)
}
