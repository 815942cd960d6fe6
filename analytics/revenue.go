package analytics

import (
	"sort"
	"time"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// Period selects the bucketing grain for revenue-over-time.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod returns the matching Period, defaulting to month.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s)
	default:
		return PeriodMonth
	}
}

// BucketKey returns the period key an order's revenue is attributed to:
// day → ISO date, week → ISO date of the preceding Sunday, month →
// YYYY-MM, year → YYYY. An order with no usable createdAt has no bucket
// and returns "".
func BucketKey(createdAt time.Time, period Period) string {
	if createdAt.IsZero() {
		return ""
	}
	switch period {
	case PeriodDay:
		return createdAt.Format("2006-01-02")
	case PeriodWeek:
		sunday := createdAt.AddDate(0, 0, -int(createdAt.Weekday()))
		return sunday.Format("2006-01-02")
	case PeriodYear:
		return createdAt.Format("2006")
	default:
		return createdAt.Format("2006-01")
	}
}

// AggregateRevenue folds an order list into totals, per-period buckets,
// per-category totals and a top-product leaderboard. Orders with an
// unusable createdAt still count toward the totals but are excluded from
// the per-period buckets. Output sequences preserve first-seen order;
// the caller sorts and slices RevenueByPeriod as needed.
func AggregateRevenue(orders []models.Order, period Period) models.RevenueSummary {
	summary := models.RevenueSummary{
		RevenueByPeriod:   []models.PeriodRevenue{},
		RevenueByCategory: []models.CategoryRevenue{},
		TopProducts:       []models.ProductRevenue{},
	}

	summary.TotalOrders = len(orders)

	periodIdx := map[string]int{}
	categoryIdx := map[string]int{}
	productIdx := map[string]int{}

	for _, order := range orders {
		summary.TotalRevenue += order.Total

		if key := BucketKey(order.CreatedAt, period); key != "" {
			if i, ok := periodIdx[key]; ok {
				summary.RevenueByPeriod[i].Revenue += order.Total
			} else {
				periodIdx[key] = len(summary.RevenueByPeriod)
				summary.RevenueByPeriod = append(summary.RevenueByPeriod, models.PeriodRevenue{Period: key, Revenue: order.Total})
			}
		}

		for _, item := range order.Items {
			itemRevenue := item.Price * float64(item.Qty)

			category := item.Category
			if category == "" {
				category = "Other"
			}
			if i, ok := categoryIdx[category]; ok {
				summary.RevenueByCategory[i].Revenue += itemRevenue
			} else {
				categoryIdx[category] = len(summary.RevenueByCategory)
				summary.RevenueByCategory = append(summary.RevenueByCategory, models.CategoryRevenue{Category: category, Revenue: itemRevenue})
			}

			if i, ok := productIdx[item.Name]; ok {
				summary.TopProducts[i].Revenue += itemRevenue
			} else {
				productIdx[item.Name] = len(summary.TopProducts)
				summary.TopProducts = append(summary.TopProducts, models.ProductRevenue{Name: item.Name, Revenue: itemRevenue})
			}
		}
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(summary.TotalOrders)
	}

	// Stable sort keeps insertion order on revenue ties.
	sort.SliceStable(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].Revenue > summary.TopProducts[j].Revenue
	})
	if len(summary.TopProducts) > TopN {
		summary.TopProducts = summary.TopProducts[:TopN]
	}

	return summary
}
