package profile_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// UpdateProfile godoc
// @Summary Update my profile
// @Description Partially update the authenticated customer's profile. Phone is immutable; loyalty points are admin-managed.
// @Tags Store - Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/me [patch]
func UpdateProfile(c *gin.Context) {
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

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[store.profile.update] bad request: bind json err=%v", err)
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

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := store.Update[models.Customer](ctx, config.Gorm, store.CollectionCustomers, customerID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account not found"))
			return
		}
		log.Printf("[store.profile.update] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	customer, err := store.Get[models.Customer](ctx, config.Gorm, customerID)
	if err != nil {
		log.Printf("[store.profile.update] ERROR refetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	log.Printf("[store.profile.update] success id=%s fields=%d", customerID, len(fields))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", customer))
}
