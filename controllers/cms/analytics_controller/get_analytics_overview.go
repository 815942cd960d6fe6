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

// GetAnalyticsOverview godoc
// @Summary Get analytics overview
// @Description Returns the combined revenue, customer and product analytics in one payload
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param period query string false "Revenue bucket grain (day, week, month, year)" default(month)
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	log.Printf("[admin.analytics-overview] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	period := analytics.ParsePeriod(c.DefaultQuery("period", "month"))

	var (
		orders    []models.Order
		customers []models.Customer
		products  []models.Product
	)
	if err := fetchAnalyticsInputs(ctx, &orders, &customers, &products); err != nil {
		log.Printf("[admin.analytics-overview] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	now := time.Now()
	enriched := analytics.DeriveCustomerTotals(customers, orders, now)

	overview := models.AnalyticsOverview{
		Revenue:   analytics.AggregateRevenue(orders, period),
		Customers: analytics.AggregateCustomers(enriched, now),
		Products:  analytics.AggregateProducts(products, orders),
	}

	log.Printf("[admin.analytics-overview] respond 200 revenue=%.2f orders=%d customers=%d products=%d",
		overview.Revenue.TotalRevenue, overview.Revenue.TotalOrders, overview.Customers.TotalCustomers, overview.Products.TotalProducts)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview retrieved successfully", overview))
}
