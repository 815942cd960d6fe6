package utils

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/softwareInkhub/bagicha-cms-backend/config"
)

// LogLoginEvent records a successful phone login. Written through the raw
// pgx pool so a slow audit insert never holds a GORM connection; failures
// are logged and swallowed.
func LogLoginEvent(c *gin.Context, customerID uuid.UUID, phone string) error {
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")
	deviceType := parseDeviceType(userAgent)

	query := `
		INSERT INTO login_events (
			id, customer_id, phone, logged_in_at, ip_address, user_agent, device_type
		) VALUES ($1, $2, $3, NOW(), $4, $5, $6)
	`

	_, err := config.StoreDB.Exec(ctx, query,
		uuid.New().String(),
		customerID.String(),
		phone,
		ipAddress,
		userAgent,
		deviceType,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	return nil
}

func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	// Android tablets carry "android" without "mobile", so tablet
	// markers have to win before the mobile check.
	if strings.Contains(ua, "ipad") ||
		strings.Contains(ua, "tablet") ||
		strings.Contains(ua, "kindle") {
		return "tablet"
	}

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "android") ||
		strings.Contains(ua, "iphone") ||
		strings.Contains(ua, "ipod") {
		return "mobile"
	}

	return "desktop"
}
