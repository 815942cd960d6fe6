package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/controllers/cms/order_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	order.Use(middleware.AdminAuthMiddleware())

	order.GET("", order_controller.GetOrders)
	order.GET("/stats", order_controller.GetOrderStats)
	order.GET("/search", order_controller.SearchOrders)
	order.GET("/stream", order_controller.StreamOrders)
	order.GET("/:id", order_controller.GetOrderDetailsByID)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)

	order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	order.POST("/:id/notes", order_controller.AddOrderNote)
	order.POST("/:id/send-invoice", order_controller.SendOrderInvoiceEmail)
}
