package customer_controller

import (
	"log"
	"math"
	"net/http"
	"sort"
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

// GetCustomers godoc
// @Summary Get customers (CMS)
// @Description Retrieve all customers with order-derived totals (total orders, total spent, segment) computed on read. Supports segment filtering and pagination.
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param segment query string false "Filter by segment (new, active, inactive, churned)"
// @Success 200 {object} models.ApiResponse{data=[]models.Customer,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	segment := strings.TrimSpace(strings.ToLower(c.Query("segment")))

	log.Printf("[admin.customers] params page=%d limit=%d segment=%q", page, limit, segment)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Totals are order-derived, so both collections are needed regardless
	// of the page requested.
	var (
		customers []models.Customer
		orders    []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := store.List[models.Customer](gctx, config.Gorm)
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
		log.Printf("[admin.customers] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	enriched := analytics.DeriveCustomerTotals(customers, orders, time.Now())

	if segment != "" {
		filtered := enriched[:0:0]
		for _, cu := range enriched {
			if cu.Segment == segment {
				filtered = append(filtered, cu)
			}
		}
		enriched = filtered
	}

	// Most recently active first, never-ordered customers last by signup date
	sort.SliceStable(enriched, func(i, j int) bool {
		li, lj := enriched[i].LastOrderDate, enriched[j].LastOrderDate
		switch {
		case li != nil && lj != nil:
			return li.After(*lj)
		case li != nil:
			return true
		case lj != nil:
			return false
		default:
			return enriched[i].CreatedAt.After(enriched[j].CreatedAt)
		}
	})

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

	log.Printf("[admin.customers] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers retrieved successfully", enriched[start:end], meta))
}
