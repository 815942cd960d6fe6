package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// Logout godoc
// @Summary Admin logout
// @Description Clear the admin session cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	if email, ok := c.Get("adminEmail"); ok {
		log.Printf("[admin.auth.logout] email=%v", email)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
