package product_controller

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

const maxSuggestions = 8

// GetSearchSuggestions godoc
// @Summary Get search suggestions
// @Description Typeahead suggestions for the storefront search box. Name-prefix matches rank before substring matches; ties break on rating weighted by review count.
// @Tags Store - Products
// @Produce json
// @Param q query string true "Search prefix (min 2 chars)"
// @Param limit query int false "Max suggestions (max 20)" default(8)
// @Success 200 {object} models.ApiResponse{data=[]models.SearchSuggestion}
// @Failure 400 {object} models.ApiResponse "Search term too short"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/suggestions [get]
func GetSearchSuggestions(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term must be at least 2 characters"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(maxSuggestions)))
	if err != nil || limit < 1 || limit > 20 {
		limit = maxSuggestions
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	like := "%" + q + "%"
	var candidates []models.Product
	if err := config.Gorm.WithContext(ctx).
		Select("id, name, category, image, price, rating, reviews").
		Where("in_stock AND (name ILIKE ? OR category ILIKE ?)", like, like).
		Limit(100).
		Find(&candidates).Error; err != nil {
		log.Printf("[store.suggestions] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
		return
	}

	lower := strings.ToLower(q)
	prefixRank := func(p models.Product) int {
		if strings.HasPrefix(strings.ToLower(p.Name), lower) {
			return 0
		}
		return 1
	}
	popularity := func(p models.Product) float64 {
		return p.Rating * float64(p.Reviews)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := prefixRank(candidates[i]), prefixRank(candidates[j])
		if ri != rj {
			return ri < rj
		}
		return popularity(candidates[i]) > popularity(candidates[j])
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]models.SearchSuggestion, 0, len(candidates))
	for _, p := range candidates {
		suggestions = append(suggestions, models.SearchSuggestion{
			ID:       p.ID.String(),
			Name:     p.Name,
			Category: p.Category,
			Image:    p.Image,
			Price:    p.Price,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions retrieved successfully", suggestions))
}
