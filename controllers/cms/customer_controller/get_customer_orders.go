package customer_controller

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// GetCustomerOrders godoc
// @Summary Get a customer's orders (CMS)
// @Description Retrieve the order history for one customer, newest first
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Order,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Invalid customer ID"
// @Failure 404 {object} models.ApiResponse "Customer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers/{id}/orders [get]
func GetCustomerOrders(c *gin.Context) {
	customerIDStr := strings.TrimSpace(c.Param("id"))
	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	customer, err := store.Get[models.Customer](ctx, config.Gorm, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		log.Printf("[admin.customer.orders] ERROR fetch customer err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	db := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ? OR customer_phone = ?", customer.ID, customer.Phone)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.customer.orders] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	orders := make([]models.Order, 0, limit)
	if err := db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		log.Printf("[admin.customer.orders] ERROR data query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.customer.orders] respond 200 phone=%s total=%d", customer.Phone, total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer orders retrieved successfully", orders, meta))
}
