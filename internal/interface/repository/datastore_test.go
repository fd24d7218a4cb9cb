package repository

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/internal/infrastructure/persistence"
	"yieldboard/internal/seed"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/metrics"
	"yieldboard/pkg/utils"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, backend persistence.Backend) (*DataStore, *metrics.Metrics) {
	t.Helper()
	clock := utils.FixedClock{T: testNow}
	m := metrics.NewMetrics("test")
	generator := seed.NewGenerator(clock, rand.New(rand.NewSource(42)))
	return NewDataStore(backend, generator, clock, logger.NewNopLogger(), m), m
}

func date(t *testing.T, s string) *entity.Date {
	t.Helper()
	d, err := entity.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestInitSeedsCollections(t *testing.T) {
	ctx := context.Background()
	backend := persistence.NewMemoryBackend()
	store, m := newTestStore(t, backend)

	require.NoError(t, store.Init(ctx))

	for _, name := range []string{
		persistence.ProductsCollection,
		persistence.SeasonsCollection,
		persistence.PricingVersionsCollection,
		persistence.DeparturesCollection,
	} {
		_, ok, err := backend.Get(ctx, name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	seeded := seededGauges(t, m)
	assert.Equal(t, 28.0, seeded[persistence.ProductsCollection])
	assert.Equal(t, 4.0, seeded[persistence.SeasonsCollection])
	assert.Greater(t, seeded[persistence.DeparturesCollection], 0.0)
}

func seededGauges(t *testing.T, m *metrics.Metrics) map[string]float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != "test_seeded_records" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "collection" {
					values[label.GetValue()] = metric.GetGauge().GetValue()
				}
			}
		}
	}
	return values
}

func TestLazySeeding(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 28)

	seasons, err := store.GetAllSeasons(ctx)
	require.NoError(t, err)
	assert.Len(t, seasons, 4)
}

func TestInitKeepsExistingCollections(t *testing.T) {
	ctx := context.Background()
	backend := persistence.NewMemoryBackend()

	existing := persistence.NewDocumentCollection[entity.Product](backend, persistence.ProductsCollection)
	require.NoError(t, existing.Save(ctx, []entity.Product{{ID: "x1", Name: "Only", CurrentPrice: 100, CostBasis: 50}}))

	store, _ := newTestStore(t, backend)
	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	versions, err := store.GetAllPricingVersions(ctx)
	require.NoError(t, err)
	for _, v := range versions {
		assert.Equal(t, "x1", v.ProductID)
	}
}

func TestReseedReplacesCollections(t *testing.T) {
	ctx := context.Background()
	backend := persistence.NewMemoryBackend()

	existing := persistence.NewDocumentCollection[entity.Product](backend, persistence.ProductsCollection)
	require.NoError(t, existing.Save(ctx, []entity.Product{{ID: "x1", Name: "Only", CurrentPrice: 100, CostBasis: 50}}))

	store, m := newTestStore(t, backend)
	require.NoError(t, store.Reseed(ctx))

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 28)

	versions, err := store.GetPricingVersionsByProduct(ctx, "p001")
	require.NoError(t, err)
	assert.NotEmpty(t, versions)

	seeded := seededGauges(t, m)
	assert.Equal(t, 28.0, seeded[persistence.ProductsCollection])
	assert.Greater(t, seeded[persistence.PricingVersionsCollection], float64(len(versions)))
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)

	for _, p := range products {
		got, err := store.GetProductByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, *got)
	}

	_, err = store.GetProductByID(ctx, "p999")
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestGetPricingVersionsByProduct(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	versions, err := store.GetPricingVersionsByProduct(ctx, "p003")
	require.NoError(t, err)
	require.NotEmpty(t, versions)

	for i, v := range versions {
		assert.Equal(t, "p003", v.ProductID)
		if i > 0 {
			assert.False(t, v.EffectiveDate.After(versions[i-1].EffectiveDate.Time))
		}
	}

	none, err := store.GetPricingVersionsByProduct(ctx, "p999")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPricingVersionsFiltered(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	start := date(t, "2025-01-01")
	end := date(t, "2025-12-31")

	versions, err := store.GetPricingVersionsFiltered(ctx, repository.VersionFilter{StartDate: start, EndDate: end})
	require.NoError(t, err)
	require.NotEmpty(t, versions)

	for i, v := range versions {
		assert.False(t, v.EffectiveDate.Before(start.Time))
		assert.False(t, v.EffectiveDate.After(end.Time))
		if i > 0 {
			assert.False(t, v.EffectiveDate.After(versions[i-1].EffectiveDate.Time))
		}
	}
}

func TestGetPricingVersionsFilteredInclusiveBounds(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	// every product has a current version effective today
	today := date(t, "2026-10-17")
	versions, err := store.GetPricingVersionsFiltered(ctx, repository.VersionFilter{
		ProductID: "p001",
		StartDate: today,
		EndDate:   today,
	})
	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "v-p001-0", versions[0].ID)
}

func TestAddPriceVersion(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	before, err := store.GetAllPricingVersions(ctx)
	require.NoError(t, err)

	version := &entity.PriceVersion{
		ProductID:     "p001",
		BasePrice:     5400,
		EffectiveDate: *date(t, "2026-11-01"),
	}
	require.NoError(t, store.AddPriceVersion(ctx, version))

	assert.True(t, strings.HasPrefix(version.ID, "v-p001-"))
	assert.Len(t, version.ID, len("v-p001-")+8)
	assert.Equal(t, testNow, version.Timestamp)

	after, err := store.GetAllPricingVersions(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, *version, after[0])
}

func TestAddPriceVersionKeepsAssignedFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	version := &entity.PriceVersion{ID: "custom", ProductID: "p002", BasePrice: 100, Timestamp: stamp}
	require.NoError(t, store.AddPriceVersion(ctx, version))

	assert.Equal(t, "custom", version.ID)
	assert.Equal(t, stamp, version.Timestamp)
}

func TestAddPriceVersionRequiresFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	err := store.AddPriceVersion(ctx, &entity.PriceVersion{BasePrice: 100})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)

	err = store.AddPriceVersion(ctx, &entity.PriceVersion{ProductID: "p001"})
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestDepartureQueries(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	byProduct, err := store.GetDeparturesByProduct(ctx, "p009")
	require.NoError(t, err)
	require.NotEmpty(t, byProduct)
	for i, d := range byProduct {
		assert.Equal(t, "p009", d.ProductID)
		if i > 0 {
			assert.False(t, d.DepartureDate.Before(byProduct[i-1].DepartureDate.Time))
		}
	}

	summer, err := store.GetDeparturesBySeason(ctx, "p009", seed.SummerSeason)
	require.NoError(t, err)
	require.NotEmpty(t, summer)
	for _, d := range summer {
		assert.Equal(t, seed.SummerSeason, d.Season)
	}

	none, err := store.GetDeparturesBySeason(ctx, "p009", "summer")
	require.NoError(t, err)
	assert.Empty(t, none)

	got, err := store.GetDepartureByID(ctx, byProduct[0].ID)
	require.NoError(t, err)
	assert.Equal(t, byProduct[0], *got)

	_, err = store.GetDepartureByID(ctx, "d-missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFilterDepartures(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, persistence.NewMemoryBackend())

	all, err := store.GetAllDepartures(ctx)
	require.NoError(t, err)

	filter := repository.DepartureFilter{BookingPace: entity.PaceSlow}
	slow, err := store.FilterDepartures(ctx, filter)
	require.NoError(t, err)

	expected := 0
	for _, d := range all {
		if d.BookingPace == entity.PaceSlow {
			expected++
		}
	}
	assert.Len(t, slow, expected)

	unfiltered, err := store.FilterDepartures(ctx, repository.DepartureFilter{})
	require.NoError(t, err)
	assert.Equal(t, all, unfiltered)
}

func TestMalformedCollectionSurfacesError(t *testing.T) {
	ctx := context.Background()
	backend := persistence.NewMemoryBackend()
	require.NoError(t, backend.Put(ctx, persistence.ProductsCollection, []byte("{broken")))

	store, _ := newTestStore(t, backend)
	_, err := store.GetAllProducts(ctx)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, entity.ErrNotFound))
}
