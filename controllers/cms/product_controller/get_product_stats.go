package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetProductStats godoc
// @Summary Get product stats (CMS)
// @Description Returns the products dashboard header numbers: counts by stock state, organic share, price and rating averages, total inventory
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ProductStatsResponse}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	log.Printf("[admin.product.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.ProductStatsResponse
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Select(`
			COUNT(*)::int AS total_products,
			COUNT(*) FILTER (WHERE in_stock)::int AS in_stock_products,
			COUNT(*) FILTER (WHERE NOT in_stock)::int AS out_of_stock_products,
			COUNT(*) FILTER (WHERE stock < ?)::int AS low_stock_products,
			COUNT(*) FILTER (WHERE organic)::int AS organic_products,
			COALESCE(AVG(price), 0) AS average_price,
			COALESCE(AVG(rating), 0) AS average_rating,
			COALESCE(SUM(stock), 0)::int AS total_inventory
		`, analytics.LowStockThreshold).
		Scan(&stats).Error; err != nil {
		log.Printf("[admin.product.stats] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	log.Printf("[admin.product.stats] respond 200 total=%d low_stock=%d", stats.TotalProducts, stats.LowStockProducts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats retrieved successfully", stats))
}
