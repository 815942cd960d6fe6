package category_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// CreateCategory godoc
// @Summary Create category (CMS)
// @Description Create a category with its emoji icon and declared subcategories. Names are unique.
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CategoryRequest true "Category payload"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 409 {object} models.ApiResponse "Category already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.category.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Category{}).
		Where("name = ?", req.Name).
		Count(&existing).Error; err != nil {
		log.Printf("[admin.category.create] ERROR duplicate check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this name already exists"))
		return
	}

	category := models.Category{
		Name:          req.Name,
		Icon:          req.Icon,
		Subcategories: models.SubcategoryList(req.Subcategories),
	}

	if err := store.Create(ctx, config.Gorm, store.CollectionCategories, &category); err != nil {
		log.Printf("[admin.category.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	catalog_cache.Invalidate()

	log.Printf("[admin.category.create] success id=%s name=%q", category.ID, category.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
