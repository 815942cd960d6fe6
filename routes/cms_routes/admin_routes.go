package cms_routes

import (
	"github.com/gin-gonic/gin"

	admin_auth "github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/admin_controller/auth"
	"github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/settings_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupAdminRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", admin_auth.Login)

	protected := auth.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.Logout)
		protected.GET("/me", admin_auth.Me)
	}

	settings := rg.Group("/settings")
	settings.Use(middleware.AdminAuthMiddleware())
	{
		settings.GET("/storefront", settings_controller.GetStorefrontSettings)
		settings.PUT("/storefront/:key", settings_controller.UpsertStorefrontSetting)
	}
}
