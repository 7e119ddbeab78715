package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// LeadRepository persistence port for CRM leads.
type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	CreateBatch(ctx context.Context, leads []*entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	Update(ctx context.Context, l *entity.Lead) error
	Delete(ctx context.Context, id string) error
	// List returns a page matching search (name/email/company) plus the
	// total match count.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Lead, int, error)
}
