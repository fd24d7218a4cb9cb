package seed

import (
	"fmt"
	"math"
	"sort"
	"time"

	"yieldboard/internal/domain/entity"
	"yieldboard/pkg/utils"
)

const (
	historyMonths       = 30
	minVersionsPerItem  = 15
	versionCountSpread  = 11
	timestampLeadDays   = 3
	currentPricingNotes = "Current active pricing"
)

// ClassifyChangeMonth buckets a calendar month for price history generation.
// Summer is tested before Spring, so June resolves to Summer.
func ClassifyChangeMonth(month int) (string, entity.SeasonType) {
	switch {
	case month >= 6 && month <= 9:
		return SummerSeason, entity.SeasonHigh
	case month >= 4 && month <= 6:
		return SpringSeason, entity.SeasonHigh
	case month >= 10 && month <= 12:
		return FallSeason, entity.SeasonShoulder
	default:
		return WinterSeason, entity.SeasonShoulder
	}
}

// PriceComponents builds the fixed component list attached to every generated version
func PriceComponents(basePrice float64, seasonType entity.SeasonType) []entity.PriceComponent {
	singleSupplement := 65.0
	if seasonType == entity.SeasonHigh {
		singleSupplement = 75
	}
	earlyBooking := -10.0
	if seasonType == entity.SeasonLow {
		earlyBooking = -15
	}

	return []entity.PriceComponent{
		{Type: entity.ComponentBase, Name: "Base Land Services", Value: basePrice, Description: "Core tour package price"},
		{Type: entity.ComponentSingleSupplement, Name: "Single Supplement", Value: singleSupplement, IsPercentage: true, Description: "Additional charge for solo travelers"},
		{Type: entity.ComponentChildDiscount, Name: "Child Discount (Under 12)", Value: -30, IsPercentage: true, Description: "Discount for children"},
		{Type: entity.ComponentEarlyBooking, Name: "Early Booking (90+ days)", Value: earlyBooking, IsPercentage: true, Description: "Advance booking incentive"},
		{Type: entity.ComponentGroupRate, Name: "Group Rate (8+)", Value: -10, IsPercentage: true, Description: "Group booking discount"},
	}
}

func (g *Generator) seasonPriceMultiplier(seasonType entity.SeasonType) float64 {
	switch seasonType {
	case entity.SeasonHigh:
		return g.uniform(1.00, 1.15)
	case entity.SeasonShoulder:
		return g.uniform(0.95, 1.05)
	default:
		return g.uniform(0.75, 0.90)
	}
}

// GeneratePriceVersions produces 15-25 versions per product spread backwards
// over 30 months, sorted newest timestamp first.
func (g *Generator) GeneratePriceVersions(products []entity.Product) []entity.PriceVersion {
	now := g.clock.Now()
	var versions []entity.PriceVersion

	for _, product := range products {
		count := minVersionsPerItem + g.rnd.Intn(versionCountSpread)

		for i := 0; i < count; i++ {
			monthsAgo := int(math.Floor(float64(i) / float64(count) * historyMonths))
			changeDate := utils.AddMonths(now, -monthsAgo)
			season, seasonType := ClassifyChangeMonth(int(changeDate.Month()))

			multiplier := g.seasonPriceMultiplier(seasonType)
			multiplier *= g.uniform(0.95, 1.05)

			basePrice := utils.RoundHalfUp(product.CurrentPrice * multiplier)
			costBasis := utils.RoundHalfUp(product.CostBasis * g.uniform(0.95, 1.10))

			version := entity.PriceVersion{
				ID:            fmt.Sprintf("v-%s-%d", product.ID, i),
				ProductID:     product.ID,
				EffectiveDate: entity.NewDate(changeDate),
				BasePrice:     basePrice,
				Components:    PriceComponents(basePrice, seasonType),
				TotalPrice:    basePrice,
				CostBasis:     costBasis,
				MarginPercent: entity.Margin(basePrice, costBasis),
				Season:        season,
				ReasonCode:    g.pick(reasonCodes),
				ChangedBy:     g.pick(users),
				Timestamp:     changeDate.AddDate(0, 0, -timestampLeadDays).Truncate(time.Second),
			}
			if i == 0 {
				version.Notes = currentPricingNotes
			}
			versions = append(versions, version)
		}
	}

	sort.SliceStable(versions, func(a, b int) bool {
		return versions[a].Timestamp.After(versions[b].Timestamp)
	})
	return versions
}
