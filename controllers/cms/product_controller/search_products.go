package product_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// SearchProducts godoc
// @Summary Search products (CMS)
// @Description Search products by name, category or description with pagination
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Missing search term"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/search [get]
func SearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term is required"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	log.Printf("[admin.product.search] params q=%q page=%d limit=%d", q, page, limit)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	like := "%" + q + "%"
	db := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("name ILIKE ? OR category ILIKE ? OR description ILIKE ?", like, like, like)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.product.search] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search products"))
		return
	}

	products := make([]models.Product, 0, limit)
	if err := db.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		log.Printf("[admin.product.search] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search products"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.product.search] respond 200 matches=%d", total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", products, meta))
}
