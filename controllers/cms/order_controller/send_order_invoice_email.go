package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/services"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// SendOrderInvoiceEmail godoc
// @Summary Send order invoice PDF to customer
// @Description Generate an invoice PDF and email it to the customer. The email is sent asynchronously; the endpoint returns as soon as the send is queued.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 202 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid order ID or customer has no email"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/send-invoice [post]
func SendOrderInvoiceEmail(c *gin.Context) {
	orderIDStr := c.Param("id")
	log.Printf("[admin.order.send-invoice] request for order: %s", orderIDStr)

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := store.Get[models.Order](ctx, config.Gorm, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[admin.order.send-invoice] order not found: %s", orderID)
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.send-invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	// Resolve the customer email
	var customer struct {
		Name  string
		Email *string
	}
	if order.CustomerID != nil {
		if err := config.Gorm.WithContext(ctx).
			Table("customers").
			Select("name, email").
			Where("id = ?", *order.CustomerID).
			Scan(&customer).Error; err != nil {
			log.Printf("[admin.order.send-invoice] failed to fetch customer: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			return
		}
	}
	if customer.Email == nil || *customer.Email == "" {
		log.Printf("[admin.order.send-invoice] customer email missing for order: %s", orderID)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer email not found"))
		return
	}

	buf, err := services.GenerateOrderInvoicePDF(order, order.Address.Name)
	if err != nil {
		log.Printf("[admin.order.send-invoice] pdf generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	items := make([]services.OrderInvoiceItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, services.OrderInvoiceItem{
			ProductName: item.Name,
			Quantity:    item.Qty,
			Price:       item.Price,
			Subtotal:    item.Price * float64(item.Qty),
		})
	}

	data := services.OrderInvoiceEmailData{
		CustomerName:  order.Address.Name,
		CustomerEmail: *customer.Email,
		OrderNumber:   order.OrderNumber,
		OrderDate:     order.CreatedAt.Format("02 Jan 2006"),
		AddressLine:   order.Address.Line1,
		City:          order.Address.City,
		State:         order.Address.State,
		Pincode:       order.Address.Pincode,
		Items:         items,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		PDFContent:    buf.Bytes(),
	}

	// Send in the background so a slow provider doesn't block the response
	go func(orderNumber string) {
		if err := services.GetResendClient().SendOrderInvoicePDFEmail(data); err != nil {
			log.Printf("[admin.order.send-invoice] ERROR async send failed order_number=%s err=%v", orderNumber, err)
			return
		}
		log.Printf("[admin.order.send-invoice] sent order_number=%s", orderNumber)
	}(order.OrderNumber)

	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Invoice email queued", gin.H{
		"order_number": order.OrderNumber,
	}))
}
