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

// GetProducts godoc
// @Summary Get products (CMS)
// @Description Retrieve all products for the admin panel with pagination. Supports filtering by category and stock state.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param category query string false "Filter by category name"
// @Param in_stock query bool false "Filter by stock state"
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	category := strings.TrimSpace(c.Query("category"))

	log.Printf("[admin.products] params page=%d limit=%d category=%q in_stock=%q",
		page, limit, category, c.Query("in_stock"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Product{})

	if category != "" {
		db = db.Where("category = ?", category)
	}
	if v := c.Query("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid in_stock value"))
			return
		}
		db = db.Where("in_stock = ?", inStock)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.products] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	products := make([]models.Product, 0, limit)
	if err := db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		log.Printf("[admin.products] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.products] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", products, meta))
}
