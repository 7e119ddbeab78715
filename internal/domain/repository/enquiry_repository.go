package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// EnquiryRepository persistence port for enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, e *entity.Enquiry) error
	GetByID(ctx context.Context, id string) (*entity.Enquiry, error)
	Update(ctx context.Context, e *entity.Enquiry) error
	List(ctx context.Context) ([]*entity.Enquiry, error)
}
