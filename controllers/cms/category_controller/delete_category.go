package category_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// DeleteCategory godoc
// @Summary Delete category (CMS)
// @Description Delete a category. Refused while products still reference it.
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 409 {object} models.ApiResponse "Category still has products"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryIDStr := strings.TrimSpace(c.Param("id"))
	categoryID, err := uuid.Parse(categoryIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := store.Get[models.Category](ctx, config.Gorm, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		log.Printf("[admin.category.delete] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	var productCount int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("category = ?", category.Name).
		Count(&productCount).Error; err != nil {
		log.Printf("[admin.category.delete] ERROR product count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}
	if productCount > 0 {
		log.Printf("[admin.category.delete] refused name=%q products=%d", category.Name, productCount)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has products; move or delete them first"))
		return
	}

	if err := store.Delete[models.Category](ctx, config.Gorm, store.CollectionCategories, categoryID); err != nil {
		log.Printf("[admin.category.delete] ERROR delete err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	catalog_cache.Invalidate()

	log.Printf("[admin.category.delete] success id=%s name=%q", categoryID, category.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", gin.H{
		"id": categoryID.String(),
	}))
}
