package analytics

import (
	"sort"

	"github.com/softwareInkhub/bagicha-cms-backend/models"
)

// AggregateProducts joins order line items against the product catalog to
// compute per-product units-sold and revenue, per-category rollups and
// low-stock flags. Line items that match no catalog product are skipped.
func AggregateProducts(products []models.Product, orders []models.Order) models.ProductSummary {
	summary := models.ProductSummary{
		TopSellingProducts:  []models.ProductPerformance{},
		TopRevenueProducts:  []models.ProductPerformance{},
		CategoryPerformance: []models.CategoryPerformance{},
		LowStockAlerts:      []models.ProductPerformance{},
	}

	summary.TotalProducts = len(products)

	perf := make([]models.ProductPerformance, 0, len(products))
	perfIdx := make(map[string]int, len(products))
	categoryIdx := map[string]int{}

	for _, product := range products {
		perfIdx[product.ID.String()] = len(perf)
		perf = append(perf, models.ProductPerformance{
			ID:        product.ID.String(),
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			Inventory: product.Stock,
		})
		if _, ok := categoryIdx[product.Category]; !ok {
			categoryIdx[product.Category] = len(summary.CategoryPerformance)
			summary.CategoryPerformance = append(summary.CategoryPerformance, models.CategoryPerformance{Category: product.Category})
		}
	}

	for _, order := range orders {
		for _, item := range order.Items {
			key := item.ProductID
			if key == "" {
				key = item.LegacyID
			}
			i, ok := perfIdx[key]
			if !ok {
				continue
			}

			itemRevenue := item.Price * float64(item.Qty)
			perf[i].Sold += item.Qty
			perf[i].Revenue += itemRevenue

			ci := categoryIdx[perf[i].Category]
			summary.CategoryPerformance[ci].Sold += item.Qty
			summary.CategoryPerformance[ci].Revenue += itemRevenue
		}
	}

	summary.TopSellingProducts = topBy(perf, func(p models.ProductPerformance) float64 { return float64(p.Sold) })
	summary.TopRevenueProducts = topBy(perf, func(p models.ProductPerformance) float64 { return p.Revenue })

	for _, p := range perf {
		if p.Inventory < LowStockThreshold {
			summary.LowStockAlerts = append(summary.LowStockAlerts, p)
		}
	}

	return summary
}

// topBy returns the TopN accumulators ranked descending by key, stable on
// ties.
func topBy(perf []models.ProductPerformance, key func(models.ProductPerformance) float64) []models.ProductPerformance {
	ranked := make([]models.ProductPerformance, len(perf))
	copy(ranked, perf)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}
