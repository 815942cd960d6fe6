package ecommerce_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/controllers/ecommerce/auth_controller"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
)

func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/store/auth")

	// OTP endpoints carry their own per-phone limits in Redis; this IP
	// limit is a backstop against scripted abuse.
	auth.POST("/send-otp", middleware.RateLimiter(10, time.Minute), auth_controller.SendOTP)
	auth.POST("/verify-otp", middleware.RateLimiter(20, time.Minute), auth_controller.VerifyOTP)
	auth.POST("/logout", auth_controller.Logout)
}
