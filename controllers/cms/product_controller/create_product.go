package product_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/softwareInkhub/bagicha-cms-backend/cache"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/store"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product. Category must exist; if a subcategory is given it must be declared under that category.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details with Cloudinary image URL"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.product.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Category must exist; subcategory (if any) must be declared on it
	var category models.Category
	if err := config.Gorm.WithContext(ctx).
		Where("name = ?", req.Category).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[admin.product.create] invalid category %q", req.Category)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown category"))
			return
		}
		log.Printf("[admin.product.create] ERROR category lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	if req.Subcategory != nil && strings.TrimSpace(*req.Subcategory) != "" {
		if !category.Subcategories.Contains(*req.Subcategory) {
			log.Printf("[admin.product.create] subcategory %q not under category %q", *req.Subcategory, req.Category)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Subcategory does not belong to this category"))
			return
		}
	}

	product := models.Product{
		Name:          strings.TrimSpace(req.Name),
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Badge:         req.Badge,
		BadgeColor:    req.BadgeColor,
		Stock:         req.Stock,
		InStock:       req.Stock > 0,
		FastDelivery:  req.FastDelivery,
		Organic:       req.Organic,
		Features:      models.FeatureList(req.Features),
		Description:   req.Description,
	}

	if err := store.Create(ctx, config.Gorm, store.CollectionProducts, &product); err != nil {
		log.Printf("[admin.product.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	catalog_cache.Invalidate()

	log.Printf("[admin.product.create] success id=%s name=%q", product.ID, product.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
