package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// ProductRepository persistence port for products.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
