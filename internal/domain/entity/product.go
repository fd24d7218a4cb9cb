package entity

// Region groups products by destination
type Region string

const (
	RegionSouthAmerica Region = "South America"
	RegionAfrica       Region = "Africa"
	RegionEurope       Region = "Europe"
	RegionAsiaPacific  Region = "Asia/Pacific"
)

// Product is a catalog tour. Current price and margin are operator-entered
// and are not derived from the price version history.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Description     string  `json:"description"`
	Region          Region  `json:"region"`
	Category        string  `json:"category"`
	Duration        int     `json:"duration"`
	CurrentPrice    float64 `json:"currentPrice"`
	CurrentMargin   float64 `json:"currentMargin"`
	TargetMargin    float64 `json:"targetMargin"`
	CostBasis       float64 `json:"costBasis"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	LastUpdated     Date    `json:"lastUpdated"`
	TypicalCapacity int     `json:"typicalCapacity"`
	MinCapacity     int     `json:"minCapacity,omitempty"`
	MaxCapacity     int     `json:"maxCapacity,omitempty"`
}

// MarginGap is how many percentage points the current margin trails the target
func (p Product) MarginGap() float64 {
	return p.TargetMargin - p.CurrentMargin
}

// BelowTarget reports whether the current margin misses the target
func (p Product) BelowTarget() bool {
	return p.CurrentMargin < p.TargetMargin
}

// TargetPrice is the price that would yield the target margin on the current cost basis
func (p Product) TargetPrice() float64 {
	return p.CostBasis / (1 - p.TargetMargin/100)
}

// Margin computes (price - cost) / price as a percentage
func Margin(price, cost float64) float64 {
	if price == 0 {
		return 0
	}
	return (price - cost) / price * 100
}
