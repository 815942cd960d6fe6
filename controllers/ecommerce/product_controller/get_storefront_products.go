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

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get paginated products for the storefront with optional search and filtering
// @Tags Store - Products
// @Produce json
// @Param q query string false "Search query (name or description)"
// @Param category query string false "Category name"
// @Param subcategory query string false "Subcategory name"
// @Param organic query bool false "Only organic products"
// @Param fast_delivery query bool false "Only fast-delivery products"
// @Param in_stock query bool false "Only in-stock products"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort query string false "Sort by field" Enums(price, name, rating, newest) default(newest)
// @Param order query string false "Sort order" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Bad filter value"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Product{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		db = db.Where("category = ?", category)
	}
	if subcategory := strings.TrimSpace(c.Query("subcategory")); subcategory != "" {
		db = db.Where("subcategory = ?", subcategory)
	}

	for _, flag := range []struct {
		param  string
		column string
	}{
		{"organic", "organic"},
		{"fast_delivery", "fast_delivery"},
		{"in_stock", "in_stock"},
	} {
		if v := c.Query(flag.param); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+flag.param+" value"))
				return
			}
			db = db.Where(flag.column+" = ?", b)
		}
	}

	if v := c.Query("min_price"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid min_price value"))
			return
		}
		db = db.Where("price >= ?", minPrice)
	}
	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid max_price value"))
			return
		}
		db = db.Where("price <= ?", maxPrice)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[store.products] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	orderClause := buildStorefrontOrderClause(c.DefaultQuery("sort", "newest"), c.DefaultQuery("order", "desc"))

	products := make([]models.Product, 0, limit)
	if err := db.
		Order(orderClause).
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		log.Printf("[store.products] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", products, meta))
}
