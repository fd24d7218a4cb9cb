package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
)

// MockDataStore is a mock implementation of repository.DataStore
type MockDataStore struct {
	mock.Mock
}

func (m *MockDataStore) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockDataStore) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockDataStore) GetAllPricingVersions(ctx context.Context) ([]entity.PriceVersion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceVersion), args.Error(1)
}

func (m *MockDataStore) GetPricingVersionsByProduct(ctx context.Context, productID string) ([]entity.PriceVersion, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceVersion), args.Error(1)
}

func (m *MockDataStore) GetPricingVersionsFiltered(ctx context.Context, filter repository.VersionFilter) ([]entity.PriceVersion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceVersion), args.Error(1)
}

func (m *MockDataStore) AddPriceVersion(ctx context.Context, version *entity.PriceVersion) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

func (m *MockDataStore) GetAllSeasons(ctx context.Context) ([]entity.Season, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Season), args.Error(1)
}

func (m *MockDataStore) GetAllDepartures(ctx context.Context) ([]entity.Departure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Departure), args.Error(1)
}

func (m *MockDataStore) GetDeparturesByProduct(ctx context.Context, productID string) ([]entity.Departure, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Departure), args.Error(1)
}

func (m *MockDataStore) GetDeparturesBySeason(ctx context.Context, productID, season string) ([]entity.Departure, error) {
	args := m.Called(ctx, productID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Departure), args.Error(1)
}

func (m *MockDataStore) GetDepartureByID(ctx context.Context, id string) (*entity.Departure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Departure), args.Error(1)
}

func (m *MockDataStore) FilterDepartures(ctx context.Context, filter repository.DepartureFilter) ([]entity.Departure, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Departure), args.Error(1)
}

// MockAnalytics is a mock implementation of httpapi.Analytics
type MockAnalytics struct {
	mock.Mock
}

func (m *MockAnalytics) GetMarginAnalytics(ctx context.Context) (*entity.MarginAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MarginAnalytics), args.Error(1)
}

func (m *MockAnalytics) GetTrendData(ctx context.Context, months int) ([]entity.TrendDataPoint, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TrendDataPoint), args.Error(1)
}

func (m *MockAnalytics) GetOutliers(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockAnalytics) GetRecentChanges(ctx context.Context, limit int) ([]entity.RecentChange, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RecentChange), args.Error(1)
}

// MockForecaster is a mock implementation of httpapi.Forecaster
type MockForecaster struct {
	mock.Mock
}

func (m *MockForecaster) GetForecast(ctx context.Context, productID, season string) (*entity.ForecastSuggestion, error) {
	args := m.Called(ctx, productID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ForecastSuggestion), args.Error(1)
}

func (m *MockForecaster) GetHistoricalPatterns(ctx context.Context, productID string) ([]entity.PriceVersion, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PriceVersion), args.Error(1)
}

// MockInsights is a mock implementation of httpapi.Insights
type MockInsights struct {
	mock.Mock
}

func (m *MockInsights) GetSeasonalInventory(ctx context.Context, productID, season string) (*entity.SeasonalInventory, error) {
	args := m.Called(ctx, productID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SeasonalInventory), args.Error(1)
}

func (m *MockInsights) GetRecommendation(ctx context.Context, departureID string) (*entity.DepartureRecommendation, error) {
	args := m.Called(ctx, departureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DepartureRecommendation), args.Error(1)
}

func (m *MockInsights) GetDepartureSummary(ctx context.Context, filter repository.DepartureFilter) (*entity.DepartureSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DepartureSummary), args.Error(1)
}
