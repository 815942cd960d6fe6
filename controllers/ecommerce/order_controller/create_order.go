package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/middleware"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
	"github.com/softwareInkhub/bagicha-cms-backend/utils"
)

// Delivery fee rule: free above the threshold, flat fee below it.
const (
	freeDeliveryAbove = 499.0
	deliveryFee       = 49.0
)

// CreateOrder godoc
// @Summary Place an order
// @Description Checkout the given items. Prices and totals are recomputed server-side from the catalog; client-sent amounts are ignored. Stock is decremented atomically.
// @Tags Store - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Bad request, unknown product or insufficient stock"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders [post]
func CreateOrder(c *gin.Context) {
	customerIDStr, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	phone, _ := middleware.GetCustomerPhoneFromContext(c)

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[store.order.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := make(models.OrderLineItemList, 0, len(req.Items))
		subtotal := 0.0

		for _, item := range req.Items {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("invalid product id %q", item.ProductID)
			}

			// Row lock so two checkouts can't both take the last unit
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", productID).
				First(&product).Error; err != nil {
				return fmt.Errorf("unknown product %s", item.ProductID)
			}

			if product.Stock < item.Qty {
				return fmt.Errorf("insufficient stock for %q", product.Name)
			}

			if err := tx.Model(&models.Product{}).
				Where("id = ?", productID).
				Updates(map[string]any{
					"stock":    gorm.Expr("stock - ?", item.Qty),
					"in_stock": gorm.Expr("stock - ? > 0", item.Qty),
				}).Error; err != nil {
				return err
			}

			items = append(items, models.OrderLineItem{
				ProductID: product.ID.String(),
				Name:      product.Name,
				Price:     product.Price,
				Qty:       item.Qty,
				Category:  product.Category,
				Image:     product.Image,
			})
			subtotal += product.Price * float64(item.Qty)
		}

		fee := deliveryFee
		if subtotal >= freeDeliveryAbove {
			fee = 0
		}

		orderNumber, err := utils.NextOrderNumber(ctx, tx)
		if err != nil {
			return err
		}

		order = models.Order{
			OrderNumber:   orderNumber,
			CustomerID:    &customerID,
			CustomerPhone: phone,
			Items:         items,
			Address:       req.Address,
			Subtotal:      subtotal,
			DeliveryFee:   fee,
			Total:         subtotal + fee,
			Status:        models.OrderStatusPending,
			PaymentMethod: req.PaymentMethod,
			Notes:         models.OrderNoteList{},
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		log.Printf("[store.order.create] checkout failed customer=%s err=%v", customerID, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	store.Events.Notify(store.CollectionOrders)
	store.Events.Notify(store.CollectionProducts)

	log.Printf("[store.order.create] success order_number=%s total=%.2f items=%d",
		order.OrderNumber, order.Total, len(order.Items))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", order))
}
