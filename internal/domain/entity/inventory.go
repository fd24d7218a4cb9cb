package entity

// SeasonalInventory aggregates a product's departures, optionally within one season
type SeasonalInventory struct {
	ProductID      string  `json:"productId"`
	Season         string  `json:"season"`
	TotalCapacity  int     `json:"totalCapacity"`
	TotalBookings  int     `json:"totalBookings"`
	OccupancyRate  float64 `json:"occupancyRate"`
	AveragePrice   float64 `json:"averagePrice"`
	WeightedMargin float64 `json:"weightedMargin"`
	DepartureCount int     `json:"departureCount"`
	Revenue        float64 `json:"revenue"`
	RevPAS         float64 `json:"revPAS"`
}

// RecommendationType drives how the dashboard renders a recommendation
type RecommendationType string

const (
	RecommendationInfo        RecommendationType = "info"
	RecommendationSuccess     RecommendationType = "success"
	RecommendationOpportunity RecommendationType = "opportunity"
	RecommendationWarning     RecommendationType = "warning"
	RecommendationNormal      RecommendationType = "normal"
)

// RecommendationOption is one alternative course of action
type RecommendationOption struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Impact  string `json:"impact"`
}

// DepartureRecommendation is the suggested yield action for a single departure
type DepartureRecommendation struct {
	DepartureID    string                 `json:"departureId"`
	Type           RecommendationType     `json:"type"`
	Title          string                 `json:"title"`
	Message        string                 `json:"message"`
	Recommendation string                 `json:"recommendation,omitempty"`
	Impact         string                 `json:"impact,omitempty"`
	SuggestedPrice float64                `json:"suggestedPrice,omitempty"`
	Options        []RecommendationOption `json:"options,omitempty"`
}

// DepartureSummary counts departures by status and booking pace
type DepartureSummary struct {
	DepartureCount   int                     `json:"departureCount"`
	ByStatus         map[DepartureStatus]int `json:"byStatus"`
	ByBookingPace    map[BookingPace]int     `json:"byBookingPace"`
	AverageOccupancy float64                 `json:"averageOccupancy"`
	TotalRevenue     float64                 `json:"totalRevenue"`
}
