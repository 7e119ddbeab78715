package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// StockRequestRepository persistence port for stock requests.
type StockRequestRepository interface {
	Create(ctx context.Context, r *entity.StockRequest) error
	GetByID(ctx context.Context, id string) (*entity.StockRequest, error)
	Update(ctx context.Context, r *entity.StockRequest) error
	Delete(ctx context.Context, id string) error
	// ListAssigned is the parent's queue: requests whose recorded parent is
	// userID and, when adminSide is true, every stockist request regardless
	// of recorded parent. All statuses are included.
	ListAssigned(ctx context.Context, userID string, adminSide bool) ([]*entity.StockRequest, error)
	// ListByRequester is "my requests": everything the user created except
	// approved requests, which are assumed consumed into an order.
	ListByRequester(ctx context.Context, requesterID string) ([]*entity.StockRequest, error)
	// ListApprovedAssigned returns approved requests in the parent's queue.
	ListApprovedAssigned(ctx context.Context, userID string, adminSide bool) ([]*entity.StockRequest, error)
}
