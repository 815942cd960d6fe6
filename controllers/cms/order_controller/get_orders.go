package order_controller

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

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Retrieve all orders for the admin panel with customer details and pagination. Supports optional filtering by status and search.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by order status (pending, processing, shipped, delivered, cancelled)"
// @Param q query string false "Search by order number, customer phone, or customer name"
// @Success 200 {object} models.ApiResponse{data=[]models.OrderListRow,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		log.Printf("[admin.orders] WARN invalid page=%q err=%v -> default 1", c.Query("page"), err)
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		log.Printf("[admin.orders] WARN invalid limit=%q err=%v -> default 10", c.Query("limit"), err)
		limit = 10
	}

	if page < 1 {
		log.Printf("[admin.orders] WARN page < 1 (%d) -> set 1", page)
		page = 1
	}
	if limit < 1 || limit > 50 {
		log.Printf("[admin.orders] WARN limit out of range (%d) -> set 10", limit)
		limit = 10
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.orders] params page=%d limit=%d offset=%d status=%q q=%q", page, limit, offset, status, q)

	db := config.Gorm.Table("orders o").
		Joins("LEFT JOIN customers cu ON cu.id = o.customer_id")

	if status != "" {
		db = db.Where("o.status = ?", status)
	}

	if q != "" {
		like := "%" + q + "%"
		db = db.Where("o.order_number ILIKE ? OR o.customer_phone ILIKE ? OR cu.name ILIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	result := make([]models.OrderListRow, 0, limit)
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
		Limit(limit).
		Offset(offset).
		Scan(&result).Error; err != nil {
		log.Printf("[admin.orders] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.orders] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Orders retrieved successfully",
		result,
		meta,
	))
}
