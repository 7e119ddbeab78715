package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo PostgreSQL adapter for per-user holdings. One row per
// (user_id, product_id), enforced by a unique constraint.
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Adjust adds delta to the holding. Credits upsert the row; debits require
// an existing row with enough quantity, otherwise ErrInsufficientStock.
func (r *StockRepo) Adjust(ctx context.Context, userID, productID string, delta int64) error {
	if delta >= 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stocks (id, user_id, product_id, quantity, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (user_id, product_id)
			DO UPDATE SET quantity = stocks.quantity + EXCLUDED.quantity, updated_at = now()`,
			uuid.NewString(), userID, productID, delta,
		)
		if err != nil {
			return fmt.Errorf("credit stock: %w", err)
		}
		return nil
	}

	cmd, err := r.q.Exec(ctx, `
		UPDATE stocks SET quantity = quantity + $3, updated_at = now()
		WHERE user_id = $1 AND product_id = $2 AND quantity + $3 >= 0`,
		userID, productID, delta,
	)
	if err != nil {
		return fmt.Errorf("debit stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *StockRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Stock, int, error) {
	var total int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM stocks WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stocks: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, product_id, quantity, updated_at
		FROM stocks WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var out []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, &s)
	}
	return out, total, rows.Err()
}
