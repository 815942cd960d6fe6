package order_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// GetOrderStats godoc
// @Summary Get order stats (CMS)
// @Description Returns order counts per status plus month-over-month volume comparison
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	log.Printf("[admin.order.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	type statusCount struct {
		Status string
		Count  int
	}

	var rows []statusCount
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*)::int AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.order.stats] ERROR status counts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	counts := map[string]int{}
	total := 0
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	var currentMonth, lastMonth int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ?", monthStart).
		Count(&currentMonth).Error; err != nil {
		log.Printf("[admin.order.stats] ERROR current month count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart).
		Count(&lastMonth).Error; err != nil {
		log.Printf("[admin.order.stats] ERROR last month count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	var changePercent *float64
	if lastMonth > 0 {
		v := ((float64(currentMonth) - float64(lastMonth)) / float64(lastMonth)) * 100
		changePercent = &v
	}

	stats := models.OrderStatsResponse{
		TotalOrders:                total,
		ChangePercentFromLastMonth: changePercent,
		CurrentMonthTotal:          int(currentMonth),
		LastMonthTotal:             int(lastMonth),
		Pending:                    models.OrderStatsBreakdown{Count: counts[models.OrderStatusPending], Description: "Awaiting confirmation"},
		Processing:                 models.OrderStatsBreakdown{Count: counts[models.OrderStatusProcessing], Description: "Being prepared"},
		Shipped:                    models.OrderStatsBreakdown{Count: counts[models.OrderStatusShipped], Description: "Out for delivery"},
		Delivered:                  models.OrderStatsBreakdown{Count: counts[models.OrderStatusDelivered], Description: "Completed"},
		Cancelled:                  models.OrderStatsBreakdown{Count: counts[models.OrderStatusCancelled], Description: "Cancelled by admin or customer"},
	}

	log.Printf("[admin.order.stats] respond 200 total=%d current_month=%d last_month=%d", total, currentMonth, lastMonth)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats retrieved successfully", stats))
}
