package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/analytics_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AdminAuthMiddleware())

	analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
	analytics.GET("/revenue", analytics_controller.GetRevenueAnalytics)
	analytics.GET("/customers", analytics_controller.GetCustomerAnalytics)
	analytics.GET("/products", analytics_controller.GetProductAnalytics)
}
