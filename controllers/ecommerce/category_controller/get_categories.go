package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Retrieve all categories with product counts. Served from an in-memory cache with a 5-minute TTL.
// @Tags Store - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryWithProducts}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if categories, counts, ok := catalog_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", withCounts(categories, counts)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := store.List[models.Category](ctx, config.Gorm, store.OrderBy("name ASC"))
	if err != nil {
		log.Printf("[store.categories] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	type countRow struct {
		Category string
		Count    int
	}
	var rows []countRow
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Select("category, COUNT(*)::int AS count").
		Group("category").
		Scan(&rows).Error; err != nil {
		log.Printf("[store.categories] ERROR product counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	catalog_cache.SetCategories(categories, counts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", withCounts(categories, counts)))
}

func withCounts(categories []models.Category, counts map[string]int) []models.CategoryWithProducts {
	result := make([]models.CategoryWithProducts, 0, len(categories))
	for _, cat := range categories {
		result = append(result, models.CategoryWithProducts{
			Category: cat,
			Products: counts[cat.Name],
		})
	}
	return result
}
