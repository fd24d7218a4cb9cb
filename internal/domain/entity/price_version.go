package entity

import "time"

// ComponentType tags a price component
type ComponentType string

const (
	ComponentBase             ComponentType = "base"
	ComponentSingleSupplement ComponentType = "singleSupplement"
	ComponentChildDiscount    ComponentType = "childDiscount"
	ComponentEarlyBooking     ComponentType = "earlyBooking"
	ComponentGroupRate        ComponentType = "groupRate"
	ComponentExtension        ComponentType = "extension"
)

// PriceComponent is an absolute amount or a percentage adjustment
type PriceComponent struct {
	Type         ComponentType `json:"type"`
	Name         string        `json:"name"`
	Value        float64       `json:"value"`
	IsPercentage bool          `json:"isPercentage"`
	Description  string        `json:"description,omitempty"`
}

// PriceVersion is an immutable snapshot in a product's price history.
// TotalPrice mirrors BasePrice; components are informational only.
type PriceVersion struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"productId" validate:"required"`
	DepartureID   string           `json:"departureId,omitempty"`
	EffectiveDate Date             `json:"effectiveDate"`
	BasePrice     float64          `json:"basePrice" validate:"required"`
	Components    []PriceComponent `json:"components"`
	TotalPrice    float64          `json:"totalPrice"`
	CostBasis     float64          `json:"costBasis"`
	MarginPercent float64          `json:"marginPercent"`
	Season        string           `json:"season"`
	ReasonCode    string           `json:"reasonCode"`
	ChangedBy     string           `json:"changedBy"`
	Notes         string           `json:"notes,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}
