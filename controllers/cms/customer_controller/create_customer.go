package customer_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// CreateCustomer godoc
// @Summary Create customer (CMS)
// @Description Create a customer record from the admin panel. Phone numbers are unique; a duplicate phone is rejected.
// @Tags Admin - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateCustomerRequest true "Customer payload"
// @Success 201 {object} models.ApiResponse{data=models.Customer}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 409 {object} models.ApiResponse "Phone already registered"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers [post]
func CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.customer.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Phone = strings.TrimSpace(req.Phone)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Customer{}).
		Where("phone = ?", req.Phone).
		Count(&existing).Error; err != nil {
		log.Printf("[admin.customer.create] ERROR duplicate check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create customer"))
		return
	}
	if existing > 0 {
		log.Printf("[admin.customer.create] conflict phone=%s", req.Phone)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A customer with this phone already exists"))
		return
	}

	customer := models.Customer{
		Phone: req.Phone,
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
		City:  strings.TrimSpace(req.City),
		State: strings.TrimSpace(req.State),
	}

	if err := store.Create(ctx, config.Gorm, store.CollectionCustomers, &customer); err != nil {
		log.Printf("[admin.customer.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create customer"))
		return
	}

	customer.Segment = "new"
	customer.PreferredCategories = []string{}

	log.Printf("[admin.customer.create] success id=%s phone=%s", customer.ID, customer.Phone)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Customer created successfully", customer))
}
