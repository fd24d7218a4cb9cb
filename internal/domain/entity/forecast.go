package entity

// DemandSignal summarizes how strongly departures are selling
type DemandSignal string

const (
	DemandHigh   DemandSignal = "high"
	DemandNormal DemandSignal = "normal"
	DemandLow    DemandSignal = "low"
)

// HistoricalPoint is the representative price of one calendar year
type HistoricalPoint struct {
	Year      int      `json:"year"`
	Price     float64  `json:"price"`
	Margin    float64  `json:"margin"`
	Occupancy *float64 `json:"occupancy,omitempty"`
}

// ForecastSuggestion is a heuristic next-period price suggestion
type ForecastSuggestion struct {
	ProductID      string            `json:"productId"`
	DepartureID    string            `json:"departureId,omitempty"`
	Season         string            `json:"season"`
	SuggestedPrice float64           `json:"suggestedPrice"`
	MinPrice       float64           `json:"minPrice"`
	MaxPrice       float64           `json:"maxPrice"`
	ExpectedMargin float64           `json:"expectedMargin"`
	Confidence     float64           `json:"confidence"`
	Reasoning      string            `json:"reasoning"`
	HistoricalData []HistoricalPoint `json:"historicalData"`
	DemandSignal   DemandSignal      `json:"demandSignal,omitempty"`
	PricingAction  string            `json:"pricingAction,omitempty"`
}
