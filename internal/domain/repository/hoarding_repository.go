package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// HoardingRepository persistence port for hoardings.
type HoardingRepository interface {
	Create(ctx context.Context, h *entity.Hoarding) error
	GetByID(ctx context.Context, id string) (*entity.Hoarding, error)
	Update(ctx context.Context, h *entity.Hoarding) error
	// List returns a page matching search (name/city/area) plus the total
	// match count.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Hoarding, int, error)
}
