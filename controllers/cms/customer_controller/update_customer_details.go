package customer_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// UpdateCustomerDetails godoc
// @Summary Update customer details (CMS)
// @Description Partially update a customer. Only the provided fields change; phone is immutable.
// @Tags Admin - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Param payload body models.UpdateCustomerRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Customer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers/{id} [patch]
func UpdateCustomerDetails(c *gin.Context) {
	customerIDStr := strings.TrimSpace(c.Param("id"))
	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customer ID"))
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.customer.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.City != nil {
		fields["city"] = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		fields["state"] = strings.TrimSpace(*req.State)
	}
	if req.LoyaltyPoints != nil {
		fields["loyalty_points"] = *req.LoyaltyPoints
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := store.Update[models.Customer](ctx, config.Gorm, store.CollectionCustomers, customerID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
			return
		}
		log.Printf("[admin.customer.update] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update customer"))
		return
	}

	customer, err := store.Get[models.Customer](ctx, config.Gorm, customerID)
	if err != nil {
		log.Printf("[admin.customer.update] ERROR refetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update customer"))
		return
	}

	log.Printf("[admin.customer.update] success id=%s fields=%d", customerID, len(fields))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", customer))
}
