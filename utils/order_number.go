package utils

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Lock class for order number allocation, paired with the year as the
// second advisory lock key.
const orderNumberLockClass = 8177

// NextOrderNumber allocates the next human-facing order number, e.g.
// "ORD-2025-000042". The counter resets each year. It must be called
// inside the transaction that inserts the order: a transaction-scoped
// advisory lock serializes concurrent allocations per year and is held
// until that transaction commits, so two checkouts can never read the
// same high-water mark.
func NextOrderNumber(ctx context.Context, db *gorm.DB) (string, error) {
	year := time.Now().UTC().Year()
	prefix := orderNumberPrefix(year)

	if err := db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, ?)", orderNumberLockClass, year).Error; err != nil {
		return "", err
	}

	var lastSeq int64
	if err := db.WithContext(ctx).Raw(
		"SELECT COALESCE(MAX(SUBSTRING(order_number FROM ?)::int), 0) FROM orders WHERE order_number LIKE ?",
		len(prefix)+1, prefix+"%",
	).Scan(&lastSeq).Error; err != nil {
		return "", err
	}

	return formatOrderNumber(prefix, lastSeq+1), nil
}

func orderNumberPrefix(year int) string {
	return fmt.Sprintf("ORD-%d-", year)
}

func formatOrderNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%06d", prefix, seq)
}
