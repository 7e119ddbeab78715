package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo PostgreSQL adapter for orders. The end-customer snapshot is a
// jsonb column, null for hierarchy transfers.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	o.CreatedAt = time.Now()
	var customer []byte
	if o.Customer != nil {
		var err error
		customer, err = json.Marshal(o.Customer)
		if err != nil {
			return fmt.Errorf("marshal order customer: %w", err)
		}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, creator_id, product_id, quantity, final_price, requested_by, customer, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`,
		o.ID, o.CreatorID, o.ProductID, o.Quantity, o.FinalPrice, o.RequestedBy, customer, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var customer []byte
	err := row.Scan(&o.ID, &o.CreatorID, &o.ProductID, &o.Quantity, &o.FinalPrice,
		&o.RequestedBy, &customer, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(customer) > 0 {
		o.Customer = &entity.OrderCustomer{}
		if err := json.Unmarshal(customer, o.Customer); err != nil {
			return nil, fmt.Errorf("unmarshal order customer: %w", err)
		}
	}
	return &o, nil
}

const orderColumns = `id, creator_id, product_id, quantity, final_price, COALESCE(requested_by, ''), customer, status, created_at`

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE creator_id = $1 ORDER BY created_at DESC`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
