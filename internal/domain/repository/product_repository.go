package repository

import (
	"context"

	"yieldboard/internal/domain/entity"
)

// ProductRepository defines read access to the product catalog
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]entity.Product, error)
	GetProductByID(ctx context.Context, id string) (*entity.Product, error)
}
