package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetStorefrontSettings godoc
// @Summary Get storefront settings
// @Description Retrieve all storefront component option overrides. Components fall back to their built-in defaults for any missing key.
// @Tags Store - Settings
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontSetting}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/settings [get]
func GetStorefrontSettings(c *gin.Context) {
	if settings, ok := catalog_cache.GetSettings(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved successfully", settings))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	settings := []models.StorefrontSetting{}
	if err := config.Gorm.WithContext(ctx).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		log.Printf("[store.settings] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch settings"))
		return
	}

	catalog_cache.SetSettings(settings)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved successfully", settings))
}
