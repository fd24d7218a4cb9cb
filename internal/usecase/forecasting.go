package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/utils"
)

const (
	forecastYears      = 3
	allSeasonsLabel    = "All Seasons"
	highDemandFloor    = 80
	lowDemandCeiling   = 50
	priceBandLowerRate = 0.90
	priceBandUpperRate = 1.10
)

// ForecastingService derives next-period price suggestions from yearly price history
type ForecastingService struct {
	products   repository.ProductRepository
	versions   repository.PriceVersionRepository
	departures repository.DepartureRepository
	logger     logger.Logger
}

// NewForecastingService creates a new forecasting service
func NewForecastingService(
	products repository.ProductRepository,
	versions repository.PriceVersionRepository,
	departures repository.DepartureRepository,
	logger logger.Logger,
) *ForecastingService {
	return &ForecastingService{
		products:   products,
		versions:   versions,
		departures: departures,
		logger:     logger,
	}
}

// GetForecast suggests a price for a product, optionally restricted to one season.
// It fails with ErrNotFound when the product or its (filtered) history is missing.
func (s *ForecastingService) GetForecast(ctx context.Context, productID, season string) (*entity.ForecastSuggestion, error) {
	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	versions, err := s.versions.GetPricingVersionsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price versions: %w", err)
	}

	history := yearlyHistory(versions, season)
	if len(history) == 0 {
		return nil, fmt.Errorf("no price history for product %s: %w", productID, entity.ErrNotFound)
	}

	prices := make([]float64, len(history))
	margins := make([]float64, len(history))
	for i, h := range history {
		prices[i] = h.Price
		margins[i] = h.Margin
	}
	avgPrice := utils.Mean(prices)

	var trend float64
	if len(history) >= 2 {
		newest, oldest := history[0], history[len(history)-1]
		trend = (newest.Price - oldest.Price) / float64(newest.Year-oldest.Year)
	}

	suggested := utils.RoundHalfUp(avgPrice + trend)
	expectedMargin := entity.Margin(suggested, product.CostBasis)

	var deviation float64
	for _, p := range prices {
		deviation += math.Abs(p - avgPrice)
	}
	deviation /= float64(len(prices))

	var confidence float64
	if avgPrice > 0 {
		confidence = utils.Clamp((1-deviation/avgPrice)*100, 0, 100)
	}

	label := season
	if label == "" {
		label = allSeasonsLabel
	}

	suggestion := &entity.ForecastSuggestion{
		ProductID:      productID,
		Season:         label,
		SuggestedPrice: suggested,
		MinPrice:       utils.RoundHalfUp(suggested * priceBandLowerRate),
		MaxPrice:       utils.RoundHalfUp(suggested * priceBandUpperRate),
		ExpectedMargin: utils.RoundTo(expectedMargin, 1),
		Confidence:     utils.RoundHalfUp(confidence),
		Reasoning:      forecastReasoning(len(history), trend, expectedMargin, product.TargetMargin),
		HistoricalData: history,
	}

	if err := s.applyDemandSignal(ctx, suggestion, productID, season); err != nil {
		return nil, err
	}

	s.logger.Debug("Forecast computed",
		"productId", productID,
		"season", label,
		"years", len(history),
		"suggestedPrice", suggested,
		"confidence", suggestion.Confidence)
	return suggestion, nil
}

// GetHistoricalPatterns returns a product's price history, newest effective date first
func (s *ForecastingService) GetHistoricalPatterns(ctx context.Context, productID string) ([]entity.PriceVersion, error) {
	return s.versions.GetPricingVersionsByProduct(ctx, productID)
}

// yearlyHistory keeps the first version seen per calendar year, newest three years first.
// versions arrive newest effective date first, so each year keeps its latest version.
func yearlyHistory(versions []entity.PriceVersion, season string) []entity.HistoricalPoint {
	byYear := make(map[int]entity.HistoricalPoint)
	for _, v := range versions {
		if season != "" && v.Season != season {
			continue
		}
		year := v.EffectiveDate.Year()
		if _, ok := byYear[year]; ok {
			continue
		}
		byYear[year] = entity.HistoricalPoint{
			Year:   year,
			Price:  v.BasePrice,
			Margin: v.MarginPercent,
		}
	}

	history := make([]entity.HistoricalPoint, 0, len(byYear))
	for _, point := range byYear {
		history = append(history, point)
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Year > history[j].Year
	})

	if len(history) > forecastYears {
		history = history[:forecastYears]
	}
	return history
}

func forecastReasoning(years int, trend, expectedMargin, targetMargin float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on %d year(s) of data, ", years)

	switch {
	case trend > 0:
		fmt.Fprintf(&b, "prices have been trending upward by $%.0f/year. ", utils.RoundHalfUp(trend))
	case trend < 0:
		fmt.Fprintf(&b, "prices have been trending downward by $%.0f/year. ", utils.RoundHalfUp(math.Abs(trend)))
	default:
		b.WriteString("prices have remained stable. ")
	}

	target := strconv.FormatFloat(targetMargin, 'f', -1, 64)
	if expectedMargin >= targetMargin {
		fmt.Fprintf(&b, "This pricing achieves your target margin of %s%%.", target)
	} else {
		fmt.Fprintf(&b, "Note: This pricing falls short of your %s%% target margin by %.0f%%.",
			target, utils.RoundHalfUp(targetMargin-expectedMargin))
	}
	return b.String()
}

// applyDemandSignal sets the demand signal from mean departure occupancy.
// Products without departures in scope get no signal.
func (s *ForecastingService) applyDemandSignal(ctx context.Context, suggestion *entity.ForecastSuggestion, productID, season string) error {
	departures, err := s.departures.FilterDepartures(ctx, repository.DepartureFilter{ProductID: productID, Season: season})
	if err != nil {
		return fmt.Errorf("failed to load departures: %w", err)
	}
	if len(departures) == 0 {
		return nil
	}

	occupancy := make([]float64, len(departures))
	for i, d := range departures {
		occupancy[i] = d.OccupancyRate
	}

	switch mean := utils.Mean(occupancy); {
	case mean >= highDemandFloor:
		suggestion.DemandSignal = entity.DemandHigh
		suggestion.PricingAction = "Consider raising prices toward the upper bound"
	case mean < lowDemandCeiling:
		suggestion.DemandSignal = entity.DemandLow
		suggestion.PricingAction = "Consider promotional pricing near the lower bound"
	default:
		suggestion.DemandSignal = entity.DemandNormal
		suggestion.PricingAction = "Hold at the suggested price"
	}
	return nil
}
