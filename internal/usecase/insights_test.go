package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/internal/seed"
	"yieldboard/pkg/logger"
)

func insightsFixture() *fakeStore {
	return &fakeStore{
		products: []entity.Product{{ID: "p1"}, {ID: "p2"}},
		departures: []entity.Departure{
			{ID: "a", ProductID: "p1", Season: seed.SummerSeason, Capacity: 10, Bookings: 8, CurrentPrice: 1000, MarginPercent: 30, OccupancyRate: 80, Status: entity.StatusNearlyFull, BookingPace: entity.PaceFast},
			{ID: "b", ProductID: "p1", Season: seed.SummerSeason, Capacity: 10, Bookings: 2, CurrentPrice: 900, MarginPercent: 10, OccupancyRate: 20, Status: entity.StatusOpen, BookingPace: entity.PaceSlow},
			{ID: "c", ProductID: "p1", Season: seed.FallSeason, Capacity: 20, Bookings: 0, CurrentPrice: 800, MarginPercent: 5, OccupancyRate: 0, Status: entity.StatusCancelled, BookingPace: entity.PaceSlow},
		},
	}
}

func newInsights(store *fakeStore) *InsightsService {
	return NewInsightsService(store, store, logger.NewNopLogger())
}

func TestGetSeasonalInventory(t *testing.T) {
	svc := newInsights(insightsFixture())

	summer, err := svc.GetSeasonalInventory(context.Background(), "p1", seed.SummerSeason)
	require.NoError(t, err)
	assert.Equal(t, entity.SeasonalInventory{
		ProductID:      "p1",
		Season:         seed.SummerSeason,
		TotalCapacity:  20,
		TotalBookings:  10,
		OccupancyRate:  50,
		AveragePrice:   950,
		WeightedMargin: 26,
		DepartureCount: 2,
		Revenue:        9800,
		RevPAS:         490,
	}, *summer)

	all, err := svc.GetSeasonalInventory(context.Background(), "p1", "")
	require.NoError(t, err)
	assert.Equal(t, "All Seasons", all.Season)
	assert.Equal(t, 3, all.DepartureCount)
	assert.Equal(t, 40, all.TotalCapacity)
	assert.InDelta(t, 25.0, all.OccupancyRate, 1e-9)
	assert.InDelta(t, 245.0, all.RevPAS, 1e-9)
}

func TestGetSeasonalInventoryWithoutBookings(t *testing.T) {
	fall, err := newInsights(insightsFixture()).GetSeasonalInventory(context.Background(), "p1", seed.FallSeason)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fall.WeightedMargin)
	assert.Equal(t, 0.0, fall.Revenue)
}

func TestGetSeasonalInventoryEmptyAndMissing(t *testing.T) {
	svc := newInsights(insightsFixture())

	empty, err := svc.GetSeasonalInventory(context.Background(), "p2", "")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.DepartureCount)
	assert.Equal(t, 0.0, empty.OccupancyRate)

	_, err = svc.GetSeasonalInventory(context.Background(), "p9", "")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name      string
		departure entity.Departure
		wantType  entity.RecommendationType
		wantTitle string
	}{
		{
			name:      "cancelled wins over everything",
			departure: entity.Departure{Status: entity.StatusCancelled, BookingPace: entity.PaceFast, OccupancyRate: 95},
			wantType:  entity.RecommendationInfo,
			wantTitle: "Departure Cancelled",
		},
		{
			name:      "sold out",
			departure: entity.Departure{Status: entity.StatusSoldOut, BookingPace: entity.PaceFast, OccupancyRate: 100, DaysUntilDeparture: 100},
			wantType:  entity.RecommendationSuccess,
			wantTitle: "Sold Out",
		},
		{
			name:      "fast and full far out",
			departure: entity.Departure{Status: entity.StatusNearlyFull, BookingPace: entity.PaceFast, OccupancyRate: 85, DaysUntilDeparture: 31},
			wantType:  entity.RecommendationOpportunity,
			wantTitle: "Pricing Opportunity",
		},
		{
			name:      "fast but too close",
			departure: entity.Departure{Status: entity.StatusNearlyFull, BookingPace: entity.PaceFast, OccupancyRate: 85, DaysUntilDeparture: 30},
			wantType:  entity.RecommendationNormal,
			wantTitle: "On Track",
		},
		{
			name:      "slow and empty soon",
			departure: entity.Departure{Status: entity.StatusOpen, BookingPace: entity.PaceSlow, OccupancyRate: 39, DaysUntilDeparture: 89},
			wantType:  entity.RecommendationWarning,
			wantTitle: "At-Risk Departure",
		},
		{
			name:      "stalled counts as slow",
			departure: entity.Departure{Status: entity.StatusOpen, BookingPace: entity.PaceStalled, OccupancyRate: 10, DaysUntilDeparture: 50},
			wantType:  entity.RecommendationWarning,
			wantTitle: "At-Risk Departure",
		},
		{
			name:      "slow but far out",
			departure: entity.Departure{Status: entity.StatusOpen, BookingPace: entity.PaceSlow, OccupancyRate: 30, DaysUntilDeparture: 90},
			wantType:  entity.RecommendationNormal,
			wantTitle: "On Track",
		},
		{
			name:      "nearly full without fast pace",
			departure: entity.Departure{Status: entity.StatusNearlyFull, BookingPace: entity.PaceNormal, OccupancyRate: 91, DaysUntilDeparture: 10},
			wantType:  entity.RecommendationSuccess,
			wantTitle: "Well Done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(tt.departure)
			assert.Equal(t, tt.wantType, rec.Type)
			assert.Equal(t, tt.wantTitle, rec.Title)
			assert.NotEmpty(t, rec.Message)
		})
	}
}

func TestRecommendOpportunityDetails(t *testing.T) {
	rec := Recommend(entity.Departure{
		ID:                 "d-1",
		Status:             entity.StatusNearlyFull,
		BookingPace:        entity.PaceFast,
		OccupancyRate:      87.5,
		DaysUntilDeparture: 45,
		Capacity:           16,
		Bookings:           14,
		CurrentPrice:       12345,
	})

	assert.Equal(t, "d-1", rec.DepartureID)
	assert.Equal(t, "This departure is filling fast (88% booked with 45 days to go). You can likely raise the price.", rec.Message)
	assert.Equal(t, "Suggested action: Raise price by $1,235 to $13,580", rec.Recommendation)
	assert.Equal(t, "Potential additional revenue: $2,470", rec.Impact)
	assert.Equal(t, 13580.0, rec.SuggestedPrice)
}

func TestRecommendWarningOptions(t *testing.T) {
	rec := Recommend(entity.Departure{
		Status:             entity.StatusOpen,
		BookingPace:        entity.PaceSlow,
		OccupancyRate:      25,
		DaysUntilDeparture: 70,
		Capacity:           16,
		Bookings:           4,
		CurrentPrice:       3000,
	})

	require.Len(t, rec.Options, 2)
	assert.Equal(t, 2700.0, rec.SuggestedPrice)
	assert.Equal(t, "Offer 10% early booking discount ($2,700)", rec.Options[0].Details)
	// 2700 * 5 - 300 * 4
	assert.Equal(t, "Expected: 4-6 additional bookings, net revenue: +$12,300", rec.Options[0].Impact)
	assert.Equal(t, "Cancel by day 60 to avoid sunk costs", rec.Options[1].Details)
	assert.Equal(t, "Saves: $15,000-25,000 in operational costs, refund 4 guests", rec.Options[1].Impact)
}

func TestGetRecommendation(t *testing.T) {
	svc := newInsights(insightsFixture())

	rec, err := svc.GetRecommendation(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", rec.DepartureID)

	_, err = svc.GetRecommendation(context.Background(), "zzz")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", formatCurrency(0))
	assert.Equal(t, "$999", formatCurrency(999.4))
	assert.Equal(t, "$1,000", formatCurrency(999.5))
	assert.Equal(t, "$1,234,567", formatCurrency(1234567))
	assert.Equal(t, "-$2,500", formatCurrency(-2500))
}

func TestGetDepartureSummary(t *testing.T) {
	svc := newInsights(insightsFixture())

	summary, err := svc.GetDepartureSummary(context.Background(), repository.DepartureFilter{ProductID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.DepartureCount)
	assert.Equal(t, 1, summary.ByStatus[entity.StatusNearlyFull])
	assert.Equal(t, 1, summary.ByStatus[entity.StatusCancelled])
	assert.Equal(t, 0, summary.ByStatus[entity.StatusSoldOut])
	assert.Equal(t, 2, summary.ByBookingPace[entity.PaceSlow])
	assert.InDelta(t, 33.3, summary.AverageOccupancy, 1e-9)
	assert.Equal(t, 9800.0, summary.TotalRevenue)

	none, err := svc.GetDepartureSummary(context.Background(), repository.DepartureFilter{ProductID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, 0, none.DepartureCount)
	assert.Equal(t, 0.0, none.AverageOccupancy)
	assert.Len(t, none.ByStatus, 4)
}
