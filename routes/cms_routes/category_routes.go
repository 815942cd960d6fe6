package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/category_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())

	category.GET("", category_controller.GetCategories)
	category.GET("/:id", category_controller.GetCategoryByID)

	category.POST("", category_controller.CreateCategory)
	category.PATCH("/:id", category_controller.UpdateCategory)
	category.DELETE("/:id", category_controller.DeleteCategory)
}
