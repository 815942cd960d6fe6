package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_order "github.com/softwareInkhub/bagicha-cms-backend/controllers/ecommerce/order_controller"
	store_profile "github.com/softwareInkhub/bagicha-cms-backend/controllers/ecommerce/profile_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupUserRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	store.Use(middleware.AuthMiddleware())

	store.GET("/me", store_profile.GetMe)
	store.PATCH("/me", store_profile.UpdateProfile)

	orders := store.Group("/orders")
	{
		orders.POST("", store_order.CreateOrder)
		orders.GET("", store_order.GetOrders)
		orders.GET("/:id", store_order.GetOrderDetails)
	}
}
