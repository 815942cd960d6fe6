package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// UpdateProduct godoc
// @Summary Update product (CMS)
// @Description Partially update a product. Only the provided fields change. If stock is set, in_stock follows it unless explicitly provided.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productIDStr := strings.TrimSpace(c.Param("id"))
	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.product.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Re-validate the category/subcategory pair when either changes
	if req.Category != nil || req.Subcategory != nil {
		categoryName := ""
		if req.Category != nil {
			categoryName = *req.Category
		} else {
			var current models.Product
			if err := config.Gorm.WithContext(ctx).
				Select("category").
				Where("id = ?", productID).
				First(&current).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
					return
				}
				log.Printf("[admin.product.update] ERROR category lookup err=%v", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
				return
			}
			categoryName = current.Category
		}

		var category models.Category
		if err := config.Gorm.WithContext(ctx).
			Where("name = ?", categoryName).
			First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category"))
				return
			}
			log.Printf("[admin.product.update] ERROR category lookup err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}

		if req.Subcategory != nil && strings.TrimSpace(*req.Subcategory) != "" {
			if !category.Subcategories.Contains(*req.Subcategory) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Subcategory does not belong to this category"))
				return
			}
		}
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Subcategory != nil {
		fields["subcategory"] = *req.Subcategory
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		fields["original_price"] = *req.OriginalPrice
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Badge != nil {
		fields["badge"] = *req.Badge
	}
	if req.BadgeColor != nil {
		fields["badge_color"] = *req.BadgeColor
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
		if req.InStock == nil {
			fields["in_stock"] = *req.Stock > 0
		}
	}
	if req.InStock != nil {
		fields["in_stock"] = *req.InStock
	}
	if req.FastDelivery != nil {
		fields["fast_delivery"] = *req.FastDelivery
	}
	if req.Organic != nil {
		fields["organic"] = *req.Organic
	}
	if req.Features != nil {
		fields["features"] = models.FeatureList(*req.Features)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	if err := store.Update[models.Product](ctx, config.Gorm, store.CollectionProducts, productID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product.update] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	catalog_cache.Invalidate()

	product, err := store.Get[models.Product](ctx, config.Gorm, productID)
	if err != nil {
		log.Printf("[admin.product.update] ERROR refetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	log.Printf("[admin.product.update] success id=%s fields=%d", productID, len(fields))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
