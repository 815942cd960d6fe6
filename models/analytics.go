package models

// RevenueSummary is the output of the revenue aggregator.
type RevenueSummary struct {
	TotalRevenue      float64           `json:"total_revenue"`
	TotalOrders       int               `json:"total_orders"`
	AverageOrderValue float64           `json:"average_order_value"`
	RevenueByPeriod   []PeriodRevenue   `json:"revenue_by_period"`
	RevenueByCategory []CategoryRevenue `json:"revenue_by_category"`
	TopProducts       []ProductRevenue  `json:"top_products"`
}

// PeriodRevenue attributes revenue to one bucket key (day, week, month or
// year, depending on the requested grain). Callers sort and slice.
type PeriodRevenue struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type ProductRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// CustomerSummary is the output of the customer aggregator.
type CustomerSummary struct {
	TotalCustomers         int              `json:"total_customers"`
	Segments               SegmentCounts    `json:"segments"`
	AverageLifetimeValue   float64          `json:"average_lifetime_value"`
	GeographicDistribution []LocationCount  `json:"geographic_distribution"`
	TopCustomers           []TopCustomerRow `json:"top_customers"`
}

type SegmentCounts struct {
	New      int `json:"new"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Churned  int `json:"churned"`
}

type LocationCount struct {
	Location  string `json:"location"` // "{city}, {state}"
	Customers int    `json:"customers"`
}

type TopCustomerRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	TotalSpent  float64 `json:"total_spent"`
	TotalOrders int     `json:"total_orders"`
}

// ProductSummary is the output of the product aggregator.
type ProductSummary struct {
	TotalProducts       int                   `json:"total_products"`
	TopSellingProducts  []ProductPerformance  `json:"top_selling_products"`
	TopRevenueProducts  []ProductPerformance  `json:"top_revenue_products"`
	CategoryPerformance []CategoryPerformance `json:"category_performance"`
	LowStockAlerts      []ProductPerformance  `json:"low_stock_alerts"`
}

// ProductPerformance joins a catalog product against order line items.
type ProductPerformance struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Inventory int     `json:"inventory"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

type CategoryPerformance struct {
	Category string  `json:"category"`
	Sold     int     `json:"sold"`
	Revenue  float64 `json:"revenue"`
}

// AnalyticsOverview bundles all three aggregators for the dashboard.
type AnalyticsOverview struct {
	Revenue   RevenueSummary  `json:"revenue"`
	Customers CustomerSummary `json:"customers"`
	Products  ProductSummary  `json:"products"`
}
