package repository

import (
	"context"

	"yieldboard/internal/domain/entity"
)

// SeasonRepository defines read access to the season reference table
type SeasonRepository interface {
	GetAllSeasons(ctx context.Context) ([]entity.Season, error)
}
