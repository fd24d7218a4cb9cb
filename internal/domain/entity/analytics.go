package entity

// MarginAnalytics is the portfolio-wide margin summary
type MarginAnalytics struct {
	AverageMargin      float64 `json:"averageMargin"`
	YoYDelta           float64 `json:"yoyDelta"`
	TotalProducts      int     `json:"totalProducts"`
	BelowTarget        int     `json:"belowTarget"`
	RevenueOpportunity float64 `json:"revenueOpportunity"`
}

// TrendDataPoint is one calendar-month bucket of the margin trend
type TrendDataPoint struct {
	Date         string  `json:"date"`
	Margin       float64 `json:"margin"`
	PriceChanges int     `json:"priceChanges"`
}

// RecentChange is a price version annotated with its product name
type RecentChange struct {
	PriceVersion
	ProductName string `json:"productName"`
}
