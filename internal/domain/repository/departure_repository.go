package repository

import (
	"context"

	"yieldboard/internal/domain/entity"
)

// DepartureFilter narrows a departure query; empty fields match everything
type DepartureFilter struct {
	ProductID   string
	Season      string
	Status      entity.DepartureStatus
	BookingPace entity.BookingPace
}

// Matches reports whether d satisfies every non-empty field
func (f DepartureFilter) Matches(d entity.Departure) bool {
	if f.ProductID != "" && d.ProductID != f.ProductID {
		return false
	}
	if f.Season != "" && d.Season != f.Season {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.BookingPace != "" && d.BookingPace != f.BookingPace {
		return false
	}
	return true
}

// DepartureRepository defines read access to scheduled departures
type DepartureRepository interface {
	GetAllDepartures(ctx context.Context) ([]entity.Departure, error)
	GetDeparturesByProduct(ctx context.Context, productID string) ([]entity.Departure, error)
	GetDeparturesBySeason(ctx context.Context, productID, season string) ([]entity.Departure, error)
	GetDepartureByID(ctx context.Context, id string) (*entity.Departure, error)
	FilterDepartures(ctx context.Context, filter DepartureFilter) ([]entity.Departure, error)
}
