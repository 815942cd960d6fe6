package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/customer_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")
	customer.Use(middleware.AdminAuthMiddleware())

	customer.GET("", customer_controller.GetCustomers)
	customer.GET("/stats", customer_controller.GetCustomersStats)
	customer.GET("/search", customer_controller.SearchCustomers)
	customer.GET("/:id", customer_controller.GetCustomerDetailsByID)
	customer.GET("/:id/orders", customer_controller.GetCustomerOrders)

	customer.POST("", customer_controller.CreateCustomer)
	customer.PATCH("/:id", customer_controller.UpdateCustomerDetails)
}
