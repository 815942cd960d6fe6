package order_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Update an order status. A note is optional for all statuses, but required when the status is cancelled (cancellation reason).
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderIDStr := strings.TrimSpace(c.Param("id"))
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		log.Printf("[admin.order.update] bad request: invalid order id %q", orderIDStr)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.order.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Status = strings.TrimSpace(strings.ToLower(req.Status))

	// note supported for all statuses, but required for cancelled
	if req.Status == models.OrderStatusCancelled {
		if req.Note == nil || strings.TrimSpace(*req.Note) == "" {
			log.Printf("[admin.order.update] bad request: cancelled without note")
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A note is required when cancelling an order"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.Get[models.Order](ctx, config.Gorm, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[admin.order.update] order not found id=%s", orderID)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.update] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	log.Printf("[admin.order.update] order_number=%s %s -> %s noteProvided=%v",
		order.OrderNumber, order.Status, req.Status, req.Note != nil)

	order.Status = req.Status
	if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
		addedBy, _ := c.Get("adminEmail")
		adminEmail, _ := addedBy.(string)
		order.Notes = append(order.Notes, models.OrderNote{
			Note:    strings.TrimSpace(*req.Note),
			AddedBy: adminEmail,
			AddedAt: time.Now().UTC(),
		})
	}

	if err := store.Save(ctx, config.Gorm, store.CollectionOrders, order); err != nil {
		log.Printf("[admin.order.update] ERROR save failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	log.Printf("[admin.order.update] success order_number=%s status=%s", order.OrderNumber, order.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", order))
}
