package repository

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// StockRepository persistence port for per-user product holdings.
type StockRepository interface {
	// Adjust adds delta (may be negative) to the (user, product) holding,
	// creating the row when absent. Returns domain.ErrInsufficientStock if
	// the result would go below zero.
	Adjust(ctx context.Context, userID, productID string, delta int64) error
	// ListByUser returns a page of holdings plus the total row count.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Stock, int, error)
}
