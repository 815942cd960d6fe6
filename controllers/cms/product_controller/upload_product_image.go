package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/services"
)

const maxImageSize = 5 << 20 // 5 MB

// UploadProductImage godoc
// @Summary Upload a product image (CMS)
// @Description Upload an image to Cloudinary and return its URL for use in product payloads
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (max 5 MB)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing or oversized file"
// @Failure 500 {object} models.ApiResponse "Upload failed"
// @Router /admin/products/upload-image [post]
func UploadProductImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds the 5 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[admin.product.upload] ERROR open file err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	url, err := services.GetCloudinaryService().UploadImage(ctx, file, fileHeader.Filename, "bagicha/products")
	if err != nil {
		log.Printf("[admin.product.upload] ERROR cloudinary upload err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	log.Printf("[admin.product.upload] success filename=%q url=%s", fileHeader.Filename, url)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", gin.H{
		"url": url,
	}))
}
