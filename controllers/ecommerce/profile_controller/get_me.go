package profile_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// GetMe godoc
// @Summary Current customer profile
// @Description Return the authenticated customer's profile with order-derived totals and loyalty points
// @Tags Store - Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/me [get]
func GetMe(c *gin.Context) {
	customerIDStr, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := store.Get[models.Customer](ctx, config.Gorm, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account not found"))
			return
		}
		log.Printf("[store.me] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	orders, err := store.List[models.Order](ctx, config.Gorm,
		store.Where("customer_id = ? OR customer_phone = ?", customer.ID, customer.Phone))
	if err != nil {
		log.Printf("[store.me] ERROR fetch orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch profile"))
		return
	}

	enriched := analytics.DeriveCustomerTotals([]models.Customer{*customer}, orders, time.Now())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile retrieved successfully", enriched[0]))
}
