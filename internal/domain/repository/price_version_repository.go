package repository

import (
	"context"

	"yieldboard/internal/domain/entity"
)

// VersionFilter narrows a price version query. Date bounds are inclusive.
type VersionFilter struct {
	ProductID string
	StartDate *entity.Date
	EndDate   *entity.Date
}

// PriceVersionRepository defines access to the append-only price history
type PriceVersionRepository interface {
	GetAllPricingVersions(ctx context.Context) ([]entity.PriceVersion, error)
	GetPricingVersionsByProduct(ctx context.Context, productID string) ([]entity.PriceVersion, error)
	GetPricingVersionsFiltered(ctx context.Context, filter VersionFilter) ([]entity.PriceVersion, error)
	AddPriceVersion(ctx context.Context, version *entity.PriceVersion) error
}
