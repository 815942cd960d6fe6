package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/softwareInkhub/bagicha-cms-backend/config"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/services"
)

const adminCookieMaxAge = 7 * 24 * 60 * 60 // matches JWT expiry

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin with email and password. Returns a JWT and also sets it as an HTTP-only cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param payload body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/auth/login [post]
func Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.auth.login] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[admin.auth.login] unknown email=%s", req.Email)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[admin.auth.login] ERROR lookup err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("[admin.auth.login] wrong password email=%s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[admin.auth.login] ERROR token generation err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	now := time.Now()
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", admin.ID).
		Update("last_login_at", now).Error; err != nil {
		// Non-fatal, the login itself succeeded
		log.Printf("[admin.auth.login] WARN last_login_at update failed err=%v", err)
	}
	admin.LastLoginAt = &now

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, adminCookieMaxAge, "/", "", false, true)

	log.Printf("[admin.auth.login] success email=%s role=%s", admin.Email, admin.Role)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Token: token,
		Admin: admin,
	}))
}
