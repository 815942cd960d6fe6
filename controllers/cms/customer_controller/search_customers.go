package customer_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/softwareInkhub/bagicha-cms-backend/analytics"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// SearchCustomers godoc
// @Summary Search customers (CMS)
// @Description Search customers by name, phone, email or city. Results carry order-derived totals.
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Customer,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Missing search term"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers/search [get]
func SearchCustomers(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search term is required"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	log.Printf("[admin.customer.search] params q=%q page=%d limit=%d", q, page, limit)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	like := "%" + q + "%"

	var (
		customers []models.Customer
		orders    []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := store.List[models.Customer](gctx, config.Gorm,
			store.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ? OR city ILIKE ?", like, like, like, like))
		if err == nil {
			customers = rows
		}
		return err
	})
	g.Go(func() error {
		rows, err := store.List[models.Order](gctx, config.Gorm)
		if err == nil {
			orders = rows
		}
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[admin.customer.search] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to search customers"))
		return
	}

	enriched := analytics.DeriveCustomerTotals(customers, orders, time.Now())

	total := len(enriched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.customer.search] respond 200 matches=%d", total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers retrieved successfully", enriched[start:end], meta))
}
