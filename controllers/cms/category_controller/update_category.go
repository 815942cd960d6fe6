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

// UpdateCategory godoc
// @Summary Update category (CMS)
// @Description Partially update a category. Renaming cascades the new name to products in that category.
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID (UUID)"
// @Param payload body models.UpdateCategoryRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	categoryIDStr := strings.TrimSpace(c.Param("id"))
	categoryID, err := uuid.Parse(categoryIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.category.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
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
		log.Printf("[admin.category.update] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	oldName := category.Name

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Subcategories != nil {
		category.Subcategories = models.SubcategoryList(*req.Subcategories)
	}

	if err := store.Save(ctx, config.Gorm, store.CollectionCategories, category); err != nil {
		log.Printf("[admin.category.update] ERROR save err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	// Products reference the category by name, so a rename must cascade
	if category.Name != oldName {
		if err := config.Gorm.WithContext(ctx).
			Model(&models.Product{}).
			Where("category = ?", oldName).
			Update("category", category.Name).Error; err != nil {
			log.Printf("[admin.category.update] ERROR rename cascade err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
			return
		}
		log.Printf("[admin.category.update] renamed %q -> %q, products cascaded", oldName, category.Name)
	}

	catalog_cache.Invalidate()

	log.Printf("[admin.category.update] success id=%s", categoryID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
