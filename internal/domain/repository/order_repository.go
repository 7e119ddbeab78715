package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// OrderRepository persistence port for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Order, error)
}
