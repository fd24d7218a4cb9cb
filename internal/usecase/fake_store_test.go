package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"yieldboard/internal/domain/entity"
	"yieldboard/internal/domain/repository"
	"yieldboard/pkg/utils"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

var testClock = utils.FixedClock{T: testNow}

// fakeStore is an in-memory repository.DataStore over fixed slices
type fakeStore struct {
	products   []entity.Product
	versions   []entity.PriceVersion
	departures []entity.Departure
	err        error
}

var _ repository.DataStore = (*fakeStore)(nil)

func day(s string) entity.Date {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (f *fakeStore) GetAllProducts(context.Context) ([]entity.Product, error) {
	return f.products, f.err
}

func (f *fakeStore) GetProductByID(_ context.Context, id string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, entity.ErrNotFound)
}

func (f *fakeStore) GetAllPricingVersions(context.Context) ([]entity.PriceVersion, error) {
	return f.versions, f.err
}

func (f *fakeStore) GetPricingVersionsByProduct(ctx context.Context, productID string) ([]entity.PriceVersion, error) {
	return f.GetPricingVersionsFiltered(ctx, repository.VersionFilter{ProductID: productID})
}

func (f *fakeStore) GetPricingVersionsFiltered(_ context.Context, filter repository.VersionFilter) ([]entity.PriceVersion, error) {
	var out []entity.PriceVersion
	for _, v := range f.versions {
		if filter.ProductID == "" || v.ProductID == filter.ProductID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveDate.After(out[j].EffectiveDate.Time)
	})
	return out, f.err
}

func (f *fakeStore) AddPriceVersion(_ context.Context, v *entity.PriceVersion) error {
	f.versions = append([]entity.PriceVersion{*v}, f.versions...)
	return nil
}

func (f *fakeStore) GetAllSeasons(context.Context) ([]entity.Season, error) {
	return nil, f.err
}

func (f *fakeStore) GetAllDepartures(context.Context) ([]entity.Departure, error) {
	return f.departures, f.err
}

func (f *fakeStore) GetDeparturesByProduct(ctx context.Context, productID string) ([]entity.Departure, error) {
	return f.FilterDepartures(ctx, repository.DepartureFilter{ProductID: productID})
}

func (f *fakeStore) GetDeparturesBySeason(ctx context.Context, productID, season string) ([]entity.Departure, error) {
	return f.FilterDepartures(ctx, repository.DepartureFilter{ProductID: productID, Season: season})
}

func (f *fakeStore) GetDepartureByID(_ context.Context, id string) (*entity.Departure, error) {
	for i := range f.departures {
		if f.departures[i].ID == id {
			return &f.departures[i], nil
		}
	}
	return nil, fmt.Errorf("departure %s: %w", id, entity.ErrNotFound)
}

func (f *fakeStore) FilterDepartures(_ context.Context, filter repository.DepartureFilter) ([]entity.Departure, error) {
	var out []entity.Departure
	for _, d := range f.departures {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	return out, f.err
}
