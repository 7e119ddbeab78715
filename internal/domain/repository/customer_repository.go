package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// CustomerRepository persistence port for hoarding customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Customer, error)
}
