package settings_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// UpsertStorefrontSetting godoc
// @Summary Upsert a storefront setting (CMS)
// @Description Create or replace the option override object for one storefront component key
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Component key (e.g. featured-carousel)"
// @Param payload body models.UpsertStorefrontSettingRequest true "Option object"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontSetting}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/settings/storefront/{key} [put]
func UpsertStorefrontSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Setting key is required"))
		return
	}

	var req models.UpsertStorefrontSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.settings.upsert] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	setting := models.StorefrontSetting{
		Key:   key,
		Value: req.Value,
	}

	if err := config.Gorm.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error; err != nil {
		log.Printf("[admin.settings.upsert] ERROR upsert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save setting"))
		return
	}

	catalog_cache.Invalidate()

	log.Printf("[admin.settings.upsert] success key=%q", key)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Setting saved successfully", setting))
}
