package order_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

const streamHeartbeat = 25 * time.Second

// StreamOrders godoc
// @Summary Stream order changes (CMS)
// @Description Server-sent events stream. Emits the full order list immediately and again after every order write. Changes are coalesced; listeners refetch the whole snapshot.
// @Tags Admin - Orders
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 "SSE stream of order snapshots"
// @Router /admin/orders/stream [get]
func StreamOrders(c *gin.Context) {
	log.Printf("[admin.order.stream] client connected ip=%s", c.ClientIP())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Streaming unsupported"))
		return
	}

	changes, unsubscribe := store.Events.Subscribe(store.CollectionOrders)
	defer unsubscribe()

	sendSnapshot := func() bool {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		orders, err := store.List[models.Order](ctx, config.Gorm, store.OrderBy("created_at DESC"))
		if err != nil {
			log.Printf("[admin.order.stream] ERROR snapshot fetch err=%v", err)
			return false
		}

		payload, err := json.Marshal(orders)
		if err != nil {
			log.Printf("[admin.order.stream] ERROR marshal err=%v", err)
			return false
		}

		if _, err := c.Writer.Write([]byte("event: orders\ndata: ")); err != nil {
			return false
		}
		if _, err := c.Writer.Write(payload); err != nil {
			return false
		}
		if _, err := c.Writer.Write([]byte("\n\n")); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	// Initial snapshot on connect
	if !sendSnapshot() {
		return
	}

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			log.Printf("[admin.order.stream] client disconnected ip=%s", c.ClientIP())
			return
		case _, open := <-changes:
			if !open {
				return
			}
			if !sendSnapshot() {
				return
			}
		case <-heartbeat.C:
			if _, err := c.Writer.Write([]byte(": heartbeat\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
