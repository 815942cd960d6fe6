package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/services"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// DeleteProduct godoc
// @Summary Delete product (CMS)
// @Description Delete a product and best-effort remove its Cloudinary image. Orders keep their line-item snapshots.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productIDStr := strings.TrimSpace(c.Param("id"))
	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := store.Get[models.Product](ctx, config.Gorm, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product.delete] ERROR fetch failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	if err := store.Delete[models.Product](ctx, config.Gorm, store.CollectionProducts, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product.delete] ERROR delete failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	catalog_cache.Invalidate()

	// Image cleanup is best effort; the product row is already gone
	if product.Image != "" {
		if deleted, err := services.GetCloudinaryService().DeleteImageByURL(ctx, product.Image); err != nil {
			log.Printf("[admin.product.delete] WARN cloudinary cleanup failed url=%s err=%v", product.Image, err)
		} else if !deleted {
			log.Printf("[admin.product.delete] WARN cloudinary image not found url=%s", product.Image)
		}
	}

	log.Printf("[admin.product.delete] success id=%s name=%q", productID, product.Name)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{
		"id": productID.String(),
	}))
}
