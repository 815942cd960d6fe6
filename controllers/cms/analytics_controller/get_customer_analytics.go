package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetCustomerAnalytics godoc
// @Summary Get customer analytics
// @Description Returns segment counts, average lifetime value, geographic distribution and the top customers by spend
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CustomerSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/customers [get]
func GetCustomerAnalytics(c *gin.Context) {
	log.Printf("[admin.analytics-customers] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		orders    []models.Order
		customers []models.Customer
	)
	if err := fetchAnalyticsInputs(ctx, &orders, &customers, nil); err != nil {
		log.Printf("[admin.analytics-customers] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer analytics"))
		return
	}

	now := time.Now()
	enriched := analytics.DeriveCustomerTotals(customers, orders, now)
	summary := analytics.AggregateCustomers(enriched, now)

	log.Printf("[admin.analytics-customers] respond 200 customers=%d avg_ltv=%.2f",
		summary.TotalCustomers, summary.AverageLifetimeValue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer analytics retrieved successfully", summary))
}
