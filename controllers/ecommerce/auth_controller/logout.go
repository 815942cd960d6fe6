package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// Logout godoc
// @Summary Storefront logout
// @Description Clear the session cookie
// @Tags Store - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
