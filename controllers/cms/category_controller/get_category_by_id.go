package category_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// GetCategoryByID godoc
// @Summary Get a category by ID (CMS)
// @Description Retrieve a single category with its product count
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.CategoryWithProducts}
// @Failure 400 {object} models.ApiResponse "Invalid category ID"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
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
		log.Printf("[admin.categories.get] ERROR id=%s err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	var productCount int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("category = ?", category.Name).
		Count(&productCount).Error; err != nil {
		log.Printf("[admin.categories.get] ERROR product count id=%s err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	result := models.CategoryWithProducts{
		Category: *category,
		Products: int(productCount),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category retrieved successfully", result))
}
