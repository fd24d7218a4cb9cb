package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/internal/infrastructure/persistence"
	"yieldboard/internal/seed"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/metrics"
	"yieldboard/pkg/utils"
)

// DataStore implements repository.DataStore over four persisted collections.
// Absent collections are generated on first use.
type DataStore struct {
	products   persistence.EntityStore[entity.Product]
	versions   persistence.EntityStore[entity.PriceVersion]
	seasons    persistence.EntityStore[entity.Season]
	departures persistence.EntityStore[entity.Departure]

	generator *seed.Generator
	clock     utils.Clock
	logger    logger.Logger
	metrics   *metrics.Metrics

	seedMu sync.Mutex
	seeded bool
}

var _ repository.DataStore = (*DataStore)(nil)

// NewDataStore creates a data store on top of backend
func NewDataStore(backend persistence.Backend, generator *seed.Generator, clock utils.Clock, log logger.Logger, m *metrics.Metrics) *DataStore {
	return &DataStore{
		products:   persistence.NewDocumentCollection[entity.Product](backend, persistence.ProductsCollection),
		versions:   persistence.NewDocumentCollection[entity.PriceVersion](backend, persistence.PricingVersionsCollection),
		seasons:    persistence.NewDocumentCollection[entity.Season](backend, persistence.SeasonsCollection),
		departures: persistence.NewDocumentCollection[entity.Departure](backend, persistence.DeparturesCollection),
		generator:  generator,
		clock:      clock,
		logger:     log,
		metrics:    m,
	}
}

// Init seeds every absent collection. Products and seasons are written
// before the generated collections that depend on them.
func (s *DataStore) Init(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	if s.seeded {
		return nil
	}

	products, err := loadOrSeed(ctx, s, s.products, persistence.ProductsCollection, func() []entity.Product {
		return seed.Products()
	})
	if err != nil {
		return err
	}

	seasons, err := loadOrSeed(ctx, s, s.seasons, persistence.SeasonsCollection, func() []entity.Season {
		return seed.Seasons()
	})
	if err != nil {
		return err
	}

	if _, err := loadOrSeed(ctx, s, s.versions, persistence.PricingVersionsCollection, func() []entity.PriceVersion {
		return s.generator.GeneratePriceVersions(products)
	}); err != nil {
		return err
	}

	if _, err := loadOrSeed(ctx, s, s.departures, persistence.DeparturesCollection, func() []entity.Departure {
		return s.generator.GenerateDepartures(products, seasons)
	}); err != nil {
		return err
	}

	s.seeded = true
	return nil
}

func loadOrSeed[T any](ctx context.Context, s *DataStore, store persistence.EntityStore[T], name string, generate func() []T) ([]T, error) {
	items, ok, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return items, nil
	}

	items = generate()
	if err := saveSeeded(ctx, s, store, name, items); err != nil {
		return nil, err
	}
	return items, nil
}

func saveSeeded[T any](ctx context.Context, s *DataStore, store persistence.EntityStore[T], name string, items []T) error {
	if err := store.Save(ctx, items); err != nil {
		return err
	}

	s.logger.Info("Seeded collection", "collection", name, "records", len(items))
	if s.metrics != nil {
		s.metrics.SeededRecords.WithLabelValues(name).Set(float64(len(items)))
	}
	return nil
}

// Reseed regenerates all four collections, replacing whatever is stored
func (s *DataStore) Reseed(ctx context.Context) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	products := seed.Products()
	seasons := seed.Seasons()

	if err := saveSeeded(ctx, s, s.products, persistence.ProductsCollection, products); err != nil {
		return err
	}
	if err := saveSeeded(ctx, s, s.seasons, persistence.SeasonsCollection, seasons); err != nil {
		return err
	}
	if err := saveSeeded(ctx, s, s.versions, persistence.PricingVersionsCollection, s.generator.GeneratePriceVersions(products)); err != nil {
		return err
	}
	if err := saveSeeded(ctx, s, s.departures, persistence.DeparturesCollection, s.generator.GenerateDepartures(products, seasons)); err != nil {
		return err
	}

	s.seeded = true
	return nil
}

func (s *DataStore) ensureSeeded(ctx context.Context) error {
	if err := s.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize data store: %w", err)
	}
	return nil
}

func load[T any](ctx context.Context, s *DataStore, store persistence.EntityStore[T]) ([]T, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	items, _, err := store.Load(ctx)
	return items, err
}

// GetAllProducts returns the full catalog
func (s *DataStore) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	return load(ctx, s, s.products)
}

// GetProductByID returns the product with the given id
func (s *DataStore) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := s.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, entity.ErrNotFound)
}

// GetAllPricingVersions returns the price history in storage order
func (s *DataStore) GetAllPricingVersions(ctx context.Context) ([]entity.PriceVersion, error) {
	return load(ctx, s, s.versions)
}

// GetPricingVersionsByProduct returns a product's versions, newest effective date first
func (s *DataStore) GetPricingVersionsByProduct(ctx context.Context, productID string) ([]entity.PriceVersion, error) {
	return s.GetPricingVersionsFiltered(ctx, repository.VersionFilter{ProductID: productID})
}

// GetPricingVersionsFiltered applies the filter, newest effective date first
func (s *DataStore) GetPricingVersionsFiltered(ctx context.Context, filter repository.VersionFilter) ([]entity.PriceVersion, error) {
	versions, err := s.GetAllPricingVersions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.PriceVersion, 0, len(versions))
	for _, v := range versions {
		if filter.ProductID != "" && v.ProductID != filter.ProductID {
			continue
		}
		if filter.StartDate != nil && v.EffectiveDate.Before(filter.StartDate.Time) {
			continue
		}
		if filter.EndDate != nil && v.EffectiveDate.After(filter.EndDate.Time) {
			continue
		}
		result = append(result, v)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EffectiveDate.After(result[j].EffectiveDate.Time)
	})
	return result, nil
}

// AddPriceVersion prepends a version to the history. A missing id or
// timestamp is assigned in place.
func (s *DataStore) AddPriceVersion(ctx context.Context, version *entity.PriceVersion) error {
	if version == nil || version.ProductID == "" || version.BasePrice == 0 {
		return fmt.Errorf("productId and basePrice are required: %w", entity.ErrInvalidInput)
	}
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}

	if version.ID == "" {
		version.ID = fmt.Sprintf("v-%s-%s", version.ProductID, uuid.NewString()[:8])
	}
	if version.Timestamp.IsZero() {
		version.Timestamp = s.clock.Now()
	}

	return s.versions.Update(ctx, func(versions []entity.PriceVersion) ([]entity.PriceVersion, error) {
		return append([]entity.PriceVersion{*version}, versions...), nil
	})
}

// GetAllSeasons returns the season table
func (s *DataStore) GetAllSeasons(ctx context.Context) ([]entity.Season, error) {
	return load(ctx, s, s.seasons)
}

// GetAllDepartures returns every departure in storage order
func (s *DataStore) GetAllDepartures(ctx context.Context) ([]entity.Departure, error) {
	return load(ctx, s, s.departures)
}

// GetDeparturesByProduct returns a product's departures, earliest first
func (s *DataStore) GetDeparturesByProduct(ctx context.Context, productID string) ([]entity.Departure, error) {
	departures, err := s.FilterDepartures(ctx, repository.DepartureFilter{ProductID: productID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(departures, func(i, j int) bool {
		return departures[i].DepartureDate.Before(departures[j].DepartureDate.Time)
	})
	return departures, nil
}

// GetDeparturesBySeason matches the season display name exactly
func (s *DataStore) GetDeparturesBySeason(ctx context.Context, productID, season string) ([]entity.Departure, error) {
	return s.FilterDepartures(ctx, repository.DepartureFilter{ProductID: productID, Season: season})
}

// GetDepartureByID returns the departure with the given id
func (s *DataStore) GetDepartureByID(ctx context.Context, id string) (*entity.Departure, error) {
	departures, err := s.GetAllDepartures(ctx)
	if err != nil {
		return nil, err
	}
	for i := range departures {
		if departures[i].ID == id {
			return &departures[i], nil
		}
	}
	return nil, fmt.Errorf("departure %s: %w", id, entity.ErrNotFound)
}

// FilterDepartures returns departures matching every set field of filter
func (s *DataStore) FilterDepartures(ctx context.Context, filter repository.DepartureFilter) ([]entity.Departure, error) {
	departures, err := s.GetAllDepartures(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entity.Departure, 0, len(departures))
	for _, d := range departures {
		if filter.Matches(d) {
			result = append(result, d)
		}
	}
	return result, nil
}
