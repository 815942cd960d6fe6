package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// GetCategories godoc
// @Summary Get categories (CMS)
// @Description Retrieve all categories with per-category product counts
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryWithProducts}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := store.List[models.Category](ctx, config.Gorm, store.OrderBy("name ASC"))
	if err != nil {
		log.Printf("[admin.categories] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	type countRow struct {
		Category string
		Count    int
	}
	var counts []countRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Select("category, COUNT(*)::int AS count").
		Group("category").
		Scan(&counts).Error; err != nil {
		log.Printf("[admin.categories] ERROR product counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	countByName := make(map[string]int, len(counts))
	for _, row := range counts {
		countByName[row.Category] = row.Count
	}

	result := make([]models.CategoryWithProducts, 0, len(categories))
	for _, cat := range categories {
		result = append(result, models.CategoryWithProducts{
			Category: cat,
			Products: countByName[cat.Name],
		})
	}

	log.Printf("[admin.categories] respond 200 count=%d", len(result))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", result))
}
