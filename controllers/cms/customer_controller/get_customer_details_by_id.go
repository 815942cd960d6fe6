package customer_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// GetCustomerDetailsByID godoc
// @Summary Get customer details (CMS)
// @Description Retrieve a single customer with order-derived totals and segment
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 400 {object} models.ApiResponse "Invalid customer ID"
// @Failure 404 {object} models.ApiResponse "Customer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers/{id} [get]
func GetCustomerDetailsByID(c *gin.Context) {
	customerIDStr := strings.TrimSpace(c.Param("id"))
	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		log.Printf("[admin.customer.details] bad request: invalid customer id %q", customerIDStr)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := store.Get[models.Customer](ctx, config.Gorm, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		log.Printf("[admin.customer.details] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer"))
		return
	}

	// Orders for this customer only: id attribution plus phone fallback
	// for orders placed before the account existed.
	orders, err := store.List[models.Order](ctx, config.Gorm,
		store.Where("customer_id = ? OR customer_phone = ?", customer.ID, customer.Phone))
	if err != nil {
		log.Printf("[admin.customer.details] ERROR fetch orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer"))
		return
	}

	enriched := analytics.DeriveCustomerTotals([]models.Customer{*customer}, orders, time.Now())

	log.Printf("[admin.customer.details] respond 200 phone=%s orders=%d", customer.Phone, enriched[0].TotalOrders)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer retrieved successfully", enriched[0]))
}
