package analytics_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetRevenueAnalytics godoc
// @Summary Get revenue analytics
// @Description Returns total revenue, average order value, per-period buckets, category breakdown and top products by revenue
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "Bucket grain (day, week, month, year)" default(month)
// @Success 200 {object} models.ApiResponse{data=models.RevenueSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/revenue [get]
func GetRevenueAnalytics(c *gin.Context) {
	period := analytics.ParsePeriod(c.DefaultQuery("period", "month"))
	log.Printf("[admin.analytics-revenue] start period=%s", period)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var orders []models.Order
	if err := fetchAnalyticsInputs(ctx, &orders, nil, nil); err != nil {
		log.Printf("[admin.analytics-revenue] ERROR fetch orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch revenue analytics"))
		return
	}

	summary := analytics.AggregateRevenue(orders, period)

	log.Printf("[admin.analytics-revenue] respond 200 total=%.2f orders=%d buckets=%d",
		summary.TotalRevenue, summary.TotalOrders, len(summary.RevenueByPeriod))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Revenue analytics retrieved successfully", summary))
}
