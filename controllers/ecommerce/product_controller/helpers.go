package product_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildStorefrontOrderClause builds the ORDER BY clause shared by handlers.
func buildStorefrontOrderClause(sortBy, sortOrder string) string {
	order := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		order = "ASC"
	}

	switch sortBy {
	case "price":
		return fmt.Sprintf("price %s", order)
	case "name":
		return fmt.Sprintf("name %s", order)
	case "rating":
		return fmt.Sprintf("rating %s, reviews %s", order, order)
	case "newest":
		return fmt.Sprintf("created_at %s", order)
	default:
		return "created_at DESC"
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}
