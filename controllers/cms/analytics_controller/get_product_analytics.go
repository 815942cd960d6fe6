package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetProductAnalytics godoc
// @Summary Get product analytics
// @Description Returns top sellers, top revenue products, per-category performance and low-stock alerts
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ProductSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/products [get]
func GetProductAnalytics(c *gin.Context) {
	log.Printf("[admin.analytics-products] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		orders   []models.Order
		products []models.Product
	)
	if err := fetchAnalyticsInputs(ctx, &orders, nil, &products); err != nil {
		log.Printf("[admin.analytics-products] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product analytics"))
		return
	}

	summary := analytics.AggregateProducts(products, orders)

	log.Printf("[admin.analytics-products] respond 200 products=%d low_stock=%d",
		summary.TotalProducts, len(summary.LowStockAlerts))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product analytics retrieved successfully", summary))
}
