package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/services"
)

// SendOTP godoc
// @Summary Send login OTP
// @Description Send a 6-digit one-time code to the given phone number. Rate limited per phone: one request per minute, ten per day.
// @Tags Store - Auth
// @Accept json
// @Produce json
// @Param payload body models.SendOTPRequest true "Phone number (10-digit Indian mobile)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid phone number"
// @Failure 429 {object} models.ApiResponse "Cooldown or quota exceeded"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/send-otp [post]
func SendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, services.ErrInvalidPhone.Error()))
		return
	}

	phone := strings.TrimSpace(req.Phone)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetOTPService().SendOTP(ctx, phone); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		case errors.Is(err, services.ErrTooManyRequests), errors.Is(err, services.ErrQuotaExceeded):
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[store.auth.send-otp] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send OTP"))
		}
		return
	}

	log.Printf("[store.auth.send-otp] sent phone=%s", phone)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP sent successfully", gin.H{
		"phone": phone,
	}))
}
