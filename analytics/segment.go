// Package analytics is the single shared implementation of customer
// segmentation and the revenue/customer/product aggregators. Admin
// dashboards must use this package instead of re-deriving the numbers
// ad hoc; every function here is pure and takes its reference time as an
// argument.
package analytics

import (
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// Segment is a customer lifecycle classification based on recency of the
// last order.
type Segment string

const (
	SegmentNew      Segment = "new"
	SegmentActive   Segment = "active"
	SegmentInactive Segment = "inactive"
	SegmentChurned  Segment = "churned"
)

// Recency boundaries, in days since last activity. Exported so SQL
// recency windows can share them instead of repeating the cut-offs.
const (
	NewBoundaryDays      = 30
	ActiveBoundaryDays   = 90
	InactiveBoundaryDays = 180
)

// TopN is the leaderboard truncation used by every aggregator.
const TopN = 10

// LowStockThreshold flags products whose inventory has dropped below it
// (strict less-than).
const LowStockThreshold = 10

// DaysSince returns the number of days between the customer's last
// activity and referenceTime, floored at zero. The anchor is the last
// order date when known, the signup date otherwise; a customer with
// neither is treated as brand-new (zero elapsed days).
func DaysSince(customer models.Customer, referenceTime time.Time) float64 {
	anchor := referenceTime
	switch {
	case customer.LastOrderDate != nil && !customer.LastOrderDate.IsZero():
		anchor = *customer.LastOrderDate
	case !customer.CreatedAt.IsZero():
		anchor = customer.CreatedAt
	}

	days := referenceTime.Sub(anchor).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}

// Classify maps a customer onto a lifecycle segment at referenceTime.
// A customer who has never ordered is always "new", no matter how long
// ago they signed up.
func Classify(customer models.Customer, referenceTime time.Time) Segment {
	if customer.TotalOrders == 0 {
		return SegmentNew
	}

	days := DaysSince(customer, referenceTime)
	switch {
	case days <= NewBoundaryDays:
		return SegmentNew
	case days <= ActiveBoundaryDays:
		return SegmentActive
	case days <= InactiveBoundaryDays:
		return SegmentInactive
	default:
		return SegmentChurned
	}
}
