package customer_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetCustomersStats godoc
// @Summary Get customer stats (CMS)
// @Description Returns the customers dashboard header numbers: totals, month-over-month signups, active share and average order value
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CustomerStats}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers/stats [get]
func GetCustomersStats(c *gin.Context) {
	log.Printf("[admin.customer.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	// "Active" here spans the classifier's new+active segments: any
	// customer whose last order falls inside the active recency window.
	activeWindowStart := now.AddDate(0, 0, -analytics.ActiveBoundaryDays)

	var totalCustomers int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Customer{}).
		Count(&totalCustomers).Error; err != nil {
		log.Printf("[admin.customer.stats] ERROR total count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	var newThisMonth int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Customer{}).
		Where("created_at >= ?", monthStart).
		Count(&newThisMonth).Error; err != nil {
		log.Printf("[admin.customer.stats] ERROR new this month err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	var newLastMonth int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Customer{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&newLastMonth).Error; err != nil {
		log.Printf("[admin.customer.stats] ERROR new last month err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	growthPercent := 0.0
	if newLastMonth > 0 {
		growthPercent = ((float64(newThisMonth) - float64(newLastMonth)) / float64(newLastMonth)) * 100
	} else if newThisMonth > 0 {
		growthPercent = 100.0
	}

	// Phone match covers orders placed before the account row existed.
	var activeCustomers int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Customer{}).
		Where(`EXISTS (
			SELECT 1 FROM orders o
			WHERE (o.customer_id = customers.id OR o.customer_phone = customers.phone)
			  AND o.created_at >= ?
		)`, activeWindowStart).
		Count(&activeCustomers).Error; err != nil {
		log.Printf("[admin.customer.stats] ERROR active customers err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	activePercent := 0.0
	if totalCustomers > 0 {
		activePercent = (float64(activeCustomers) / float64(totalCustomers)) * 100
	}

	var avgOrderValue float64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(AVG(total), 0)").
		Scan(&avgOrderValue).Error; err != nil {
		log.Printf("[admin.customer.stats] ERROR avg order value err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customer stats"))
		return
	}

	stats := models.CustomerStats{
		TotalCustomers:               int(totalCustomers),
		NewCustomersThisMonth:        int(newThisMonth),
		NewCustomersGrowthPercentage: growthPercent,
		ActiveCustomers:              int(activeCustomers),
		ActiveCustomersPercentage:    activePercent,
		AvgOrderValue:                avgOrderValue,
	}

	log.Printf("[admin.customer.stats] respond 200 total=%d active=%d avg_order_value=%.2f",
		totalCustomers, activeCustomers, avgOrderValue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer stats retrieved successfully", stats))
}
