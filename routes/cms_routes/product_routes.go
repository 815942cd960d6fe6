package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/product_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())

	product.GET("", product_controller.GetProducts)
	product.GET("/stats", product_controller.GetProductStats)
	product.GET("/search", product_controller.SearchProducts)
	product.GET("/:id", product_controller.GetProductByID)

	product.POST("", product_controller.CreateProduct)
	product.POST("/upload-image", product_controller.UploadProductImage)
	product.PATCH("/:id", product_controller.UpdateProduct)
	product.DELETE("/:id", product_controller.DeleteProduct)
}
