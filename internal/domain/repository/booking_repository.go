package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// BookingRepository persistence port for hoarding bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	Update(ctx context.Context, b *entity.Booking) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Booking, error)
}
