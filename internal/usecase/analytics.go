package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/utils"
)

const (
	// annualBookingsPerProduct scales a per-booking price gap into a yearly revenue figure
	annualBookingsPerProduct = 50
	outlierGapThreshold      = 5
	unknownProductName       = "Unknown Product"
	trendLabelLayout         = "Jan 2006"
)

// DefaultRecentChangesLimit is the recent-changes page size when none is requested
const DefaultRecentChangesLimit = 20

// AnalyticsService aggregates margin statistics over the catalog and price history
type AnalyticsService struct {
	products repository.ProductRepository
	versions repository.PriceVersionRepository
	clock    utils.Clock
	logger   logger.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	products repository.ProductRepository,
	versions repository.PriceVersionRepository,
	clock utils.Clock,
	logger logger.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		products: products,
		versions: versions,
		clock:    clock,
		logger:   logger,
	}
}

// ParsePeriod maps a trend window ("3m", "6m", "12m") to a month count.
// An empty period defaults to 12 months.
func ParsePeriod(period string) (int, error) {
	switch period {
	case "", "12m":
		return 12, nil
	case "6m":
		return 6, nil
	case "3m":
		return 3, nil
	default:
		return 0, fmt.Errorf("unsupported period %q: %w", period, entity.ErrInvalidInput)
	}
}

// activeVersion returns the version with the latest effective date not after
// at. Ties keep the first one in storage order.
func activeVersion(versions []entity.PriceVersion, productID string, at time.Time) (entity.PriceVersion, bool) {
	var (
		best  entity.PriceVersion
		found bool
	)
	for _, v := range versions {
		if v.ProductID != productID || v.EffectiveDate.After(at) {
			continue
		}
		if !found || v.EffectiveDate.After(best.EffectiveDate.Time) {
			best = v
			found = true
		}
	}
	return best, found
}

// GetMarginAnalytics summarizes current margins against targets and a year ago
func (s *AnalyticsService) GetMarginAnalytics(ctx context.Context) (*entity.MarginAnalytics, error) {
	products, err := s.products.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	versions, err := s.versions.GetAllPricingVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price versions: %w", err)
	}

	result := &entity.MarginAnalytics{TotalProducts: len(products)}
	if len(products) == 0 {
		return result, nil
	}

	oneYearAgo := utils.AddMonths(s.clock.Now(), -12)
	current := make([]float64, 0, len(products))
	historical := make([]float64, 0, len(products))
	var opportunity float64

	for _, p := range products {
		current = append(current, p.CurrentMargin)

		if v, ok := activeVersion(versions, p.ID, oneYearAgo); ok {
			historical = append(historical, v.MarginPercent)
		} else {
			historical = append(historical, p.CurrentMargin)
		}

		if p.BelowTarget() {
			result.BelowTarget++
			opportunity += (p.TargetPrice() - p.CurrentPrice) * annualBookingsPerProduct
		}
	}

	averageMargin := utils.Mean(current)
	result.AverageMargin = utils.RoundTo(averageMargin, 1)
	result.YoYDelta = utils.RoundTo(averageMargin-utils.Mean(historical), 1)
	result.RevenueOpportunity = utils.RoundHalfUp(opportunity)

	s.logger.Debug("Margin analytics computed", "products", len(products), "belowTarget", result.BelowTarget)
	return result, nil
}

// GetTrendData returns one point per calendar month from months ago through now
func (s *AnalyticsService) GetTrendData(ctx context.Context, months int) ([]entity.TrendDataPoint, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive: %w", entity.ErrInvalidInput)
	}

	products, err := s.products.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	versions, err := s.versions.GetAllPricingVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price versions: %w", err)
	}

	now := s.clock.Now()
	points := make([]entity.TrendDataPoint, 0, months+1)

	for monthStart := utils.StartOfMonth(utils.AddMonths(now, -months)); !monthStart.After(now); monthStart = utils.AddMonths(monthStart, 1) {
		monthEnd := utils.AddMonths(monthStart, 1)

		changes := 0
		for _, v := range versions {
			if !v.EffectiveDate.Before(monthStart) && v.EffectiveDate.Before(monthEnd) {
				changes++
			}
		}

		margins := make([]float64, 0, len(products))
		for _, p := range products {
			if v, ok := activeVersion(versions, p.ID, monthStart); ok {
				margins = append(margins, v.MarginPercent)
			} else {
				margins = append(margins, p.CurrentMargin)
			}
		}

		points = append(points, entity.TrendDataPoint{
			Date:         monthStart.Format(trendLabelLayout),
			Margin:       utils.RoundTo(utils.Mean(margins), 1),
			PriceChanges: changes,
		})
	}

	return points, nil
}

// GetOutliers returns products trailing their target margin by at least 5 points, widest gap first
func (s *AnalyticsService) GetOutliers(ctx context.Context) ([]entity.Product, error) {
	products, err := s.products.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	outliers := make([]entity.Product, 0)
	for _, p := range products {
		if p.MarginGap() >= outlierGapThreshold {
			outliers = append(outliers, p)
		}
	}

	sort.SliceStable(outliers, func(i, j int) bool {
		return outliers[i].MarginGap() > outliers[j].MarginGap()
	})
	return outliers, nil
}

// GetRecentChanges returns the first limit versions in storage order with product names attached
func (s *AnalyticsService) GetRecentChanges(ctx context.Context, limit int) ([]entity.RecentChange, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %w", entity.ErrInvalidInput)
	}

	versions, err := s.versions.GetAllPricingVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load price versions: %w", err)
	}
	products, err := s.products.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	if limit < len(versions) {
		versions = versions[:limit]
	}

	changes := make([]entity.RecentChange, 0, len(versions))
	for _, v := range versions {
		name, ok := names[v.ProductID]
		if !ok {
			name = unknownProductName
		}
		changes = append(changes, entity.RecentChange{PriceVersion: v, ProductName: name})
	}
	return changes, nil
}
