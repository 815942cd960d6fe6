package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetStorefrontSettings godoc
// @Summary Get storefront settings (CMS)
// @Description Retrieve all storefront component option overrides
// @Tags Admin - Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontSetting}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/settings/storefront [get]
func GetStorefrontSettings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings := []models.StorefrontSetting{}
	if err := config.Gorm.WithContext(ctx).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		log.Printf("[admin.settings] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved successfully", settings))
}
