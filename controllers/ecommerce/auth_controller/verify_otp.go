package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/services"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
	"github.com/softwareInkhub/bagicha-cms-backend/utils"
)

const sessionCookieMaxAge = 30 * 24 * 60 * 60 // matches session JWT expiry

// VerifyOTP godoc
// @Summary Verify login OTP
// @Description Verify the one-time code and establish a session. A first-time phone number gets a customer account created on the spot.
// @Tags Store - Auth
// @Accept json
// @Produce json
// @Param payload body models.VerifyOTPRequest true "Phone and 6-digit code"
// @Success 200 {object} models.ApiResponse{data=models.AuthSessionResponse}
// @Failure 400 {object} models.ApiResponse "Invalid phone or wrong code"
// @Failure 410 {object} models.ApiResponse "OTP expired"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/auth/verify-otp [post]
func VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Phone and OTP are required"))
		return
	}

	phone := strings.TrimSpace(req.Phone)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetOTPService().VerifyOTP(ctx, phone, req.OTP); err != nil {
		switch {
		case errors.Is(err, services.ErrOTPExpired):
			c.JSON(http.StatusGone, models.ErrorResponse(c, err.Error()))
		case errors.Is(err, services.ErrInvalidOTP), errors.Is(err, services.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		default:
			log.Printf("[store.auth.verify-otp] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to verify OTP"))
		}
		return
	}

	// First login creates the account
	newCustomer := false
	var customer models.Customer
	err := config.Gorm.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = models.Customer{
			Phone: phone,
			Name:  "Bagicha Shopper",
		}
		if err := store.Create(ctx, config.Gorm, store.CollectionCustomers, &customer); err != nil {
			log.Printf("[store.auth.verify-otp] ERROR create customer err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
			return
		}
		newCustomer = true
		log.Printf("[store.auth.verify-otp] new customer id=%s phone=%s", customer.ID, phone)
	} else if err != nil {
		log.Printf("[store.auth.verify-otp] ERROR customer lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to verify OTP"))
		return
	}

	token, err := utils.GenerateSessionJWT(customer.ID, customer.Phone)
	if err != nil {
		log.Printf("[store.auth.verify-otp] ERROR token generation err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to establish session"))
		return
	}

	if err := utils.LogLoginEvent(c, customer.ID, customer.Phone); err != nil {
		// Audit trail only, the login itself succeeded
		log.Printf("[store.auth.verify-otp] WARN login event insert failed err=%v", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session_token", token, sessionCookieMaxAge, "/", "", false, true)

	// Returning customers get their real segment and totals, same as /store/me
	orders, err := store.List[models.Order](ctx, config.Gorm,
		store.Where("customer_id = ? OR customer_phone = ?", customer.ID, customer.Phone))
	if err != nil {
		log.Printf("[store.auth.verify-otp] WARN order history fetch failed err=%v", err)
		orders = nil
	}
	customer = analytics.DeriveCustomerTotals([]models.Customer{customer}, orders, time.Now())[0]

	log.Printf("[store.auth.verify-otp] success phone=%s new=%v", phone, newCustomer)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AuthSessionResponse{
		Token:       token,
		Customer:    customer,
		NewCustomer: newCustomer,
	}))
}
