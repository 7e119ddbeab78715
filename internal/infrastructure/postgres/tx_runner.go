package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arcisai/crm-backend/internal/application/sales"
)

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction with
// repositories bound to it.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder runs fn with stock and order repositories bound to one tx.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(ctx context.Context, tr sales.OrderTxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := sales.OrderTxRepos{
		Stocks: NewStockRepository(tx),
		Orders: NewOrderRepository(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunFulfillment runs fn with stock and request repositories bound to one tx.
func (r *TxRunner) RunFulfillment(ctx context.Context, fn func(ctx context.Context, tr sales.FulfillTxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := sales.FulfillTxRepos{
		Stocks:   NewStockRepository(tx),
		Requests: NewStockRequestRepository(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
