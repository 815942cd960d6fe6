package order_controller

import (
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// SearchOrders godoc
// @Summary Search orders (CMS)
// @Description Advanced order search with explicit field filters, total range and created-at range
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param q query string false "Generic term matched against order number, phone and customer name"
// @Param order_number query string false "Order number (partial match)"
// @Param phone query string false "Customer phone (partial match)"
// @Param status query string false "Exact status"
// @Param min_total query number false "Minimum order total"
// @Param max_total query number false "Maximum order total"
// @Param created_from query string false "Created at lower bound (RFC3339 or YYYY-MM-DD)"
// @Param created_to query string false "Created at upper bound (RFC3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderListRow,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/search [get]
func SearchOrders(c *gin.Context) {
	var query models.AdminOrderSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Printf("[admin.order.search] bad request: bind query err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid search parameters"))
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 50 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	log.Printf("[admin.order.search] params q=%q order_number=%q phone=%q status=%q page=%d limit=%d",
		query.Q, query.OrderNumber, query.Phone, query.Status, query.Page, query.Limit)

	db := config.Gorm.Table("orders o").
		Joins("LEFT JOIN customers cu ON cu.id = o.customer_id")

	if q := strings.TrimSpace(query.Q); q != "" {
		like := "%" + q + "%"
		db = db.Where("o.order_number ILIKE ? OR o.customer_phone ILIKE ? OR cu.name ILIKE ?", like, like, like)
	}
	if v := strings.TrimSpace(query.OrderNumber); v != "" {
		db = db.Where("o.order_number ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(query.Phone); v != "" {
		db = db.Where("o.customer_phone ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(query.Status); v != "" {
		db = db.Where("o.status = ?", v)
	}
	if query.MinTotal != nil {
		db = db.Where("o.total >= ?", *query.MinTotal)
	}
	if query.MaxTotal != nil {
		db = db.Where("o.total <= ?", *query.MaxTotal)
	}

	if query.CreatedFrom != nil {
		t, err := parseSearchTime(*query.CreatedFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid created_from date"))
			return
		}
		db = db.Where("o.created_at >= ?", t)
	}
	if query.CreatedTo != nil {
		t, err := parseSearchTime(*query.CreatedTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid created_to date"))
			return
		}
		db = db.Where("o.created_at <= ?", t)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.order.search] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search orders"))
		return
	}

	result := make([]models.OrderListRow, 0, query.Limit)
	if err := db.
		Select(`
			o.id::text AS id,
			o.order_number,
			o.customer_phone,
			COALESCE(cu.name, '') AS customer_name,
			jsonb_array_length(o.items) AS item_count,
			o.total,
			o.status,
			o.created_at
		`).
		Order("o.created_at DESC").
		Limit(query.Limit).
		Offset(offset).
		Scan(&result).Error; err != nil {
		log.Printf("[admin.order.search] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search orders"))
		return
	}

	meta := &models.Pagination{
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}

	log.Printf("[admin.order.search] respond 200 total=%d", total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", result, meta))
}

// parseSearchTime accepts RFC3339 or a bare date.
func parseSearchTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
