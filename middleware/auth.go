package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/softwareInkhub/bagicha-cms-backend/models"
	"github.com/softwareInkhub/bagicha-cms-backend/utils"
)

// AuthMiddleware validates the customer session JWT from cookie or Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("session_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		// Validate token
		claims, err := utils.ValidateSessionJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired session"))
			c.Abort()
			return
		}

		// Set customer info in context
		c.Set("customerID", claims.CustomerID)
		c.Set("customerPhone", claims.Phone)

		c.Next()
	}
}

func GetCustomerIDFromContext(c *gin.Context) (string, bool) {
	customerID, exists := c.Get("customerID")
	if !exists {
		return "", false
	}
	return customerID.(string), true
}

func GetCustomerPhoneFromContext(c *gin.Context) (string, bool) {
	phone, exists := c.Get("customerPhone")
	if !exists {
		return "", false
	}
	return phone.(string), true
}
