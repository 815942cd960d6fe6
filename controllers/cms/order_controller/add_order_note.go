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

// AddOrderNote godoc
// @Summary Add a note to an order (CMS)
// @Description Append an admin note to an order. Notes are append-only and stamped with the acting admin.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.AddOrderNoteRequest true "Note payload"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/notes [post]
func AddOrderNote(c *gin.Context) {
	orderIDStr := strings.TrimSpace(c.Param("id"))
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		log.Printf("[admin.order.note] bad request: invalid order id %q", orderIDStr)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.AddOrderNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.order.note] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Note is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.Get[models.Order](ctx, config.Gorm, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.note] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add note"))
		return
	}

	addedBy, _ := c.Get("adminEmail")
	adminEmail, _ := addedBy.(string)

	order.Notes = append(order.Notes, models.OrderNote{
		Note:    strings.TrimSpace(req.Note),
		AddedBy: adminEmail,
		AddedAt: time.Now().UTC(),
	})

	if err := store.Save(ctx, config.Gorm, store.CollectionOrders, order); err != nil {
		log.Printf("[admin.order.note] ERROR save failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add note"))
		return
	}

	log.Printf("[admin.order.note] success order_number=%s notes=%d", order.OrderNumber, len(order.Notes))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Note added successfully", order))
}
