package httpapi

import (
	"context"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
)

// Analytics is the margin analytics surface used by the handlers
type Analytics interface {
	GetMarginAnalytics(ctx context.Context) (*entity.MarginAnalytics, error)
	GetTrendData(ctx context.Context, months int) ([]entity.TrendDataPoint, error)
	GetOutliers(ctx context.Context) ([]entity.Product, error)
	GetRecentChanges(ctx context.Context, limit int) ([]entity.RecentChange, error)
}

// Forecaster produces price suggestions
type Forecaster interface {
	GetForecast(ctx context.Context, productID, season string) (*entity.ForecastSuggestion, error)
	GetHistoricalPatterns(ctx context.Context, productID string) ([]entity.PriceVersion, error)
}

// Insights derives departure-level yield insights
type Insights interface {
	GetSeasonalInventory(ctx context.Context, productID, season string) (*entity.SeasonalInventory, error)
	GetRecommendation(ctx context.Context, departureID string) (*entity.DepartureRecommendation, error)
	GetDepartureSummary(ctx context.Context, filter repository.DepartureFilter) (*entity.DepartureSummary, error)
}
