package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
)

var _ repository.StockRequestRepository = (*StockRequestRepo)(nil)

// StockRequestRepo PostgreSQL adapter for stock requests.
type StockRequestRepo struct {
	q Querier
}

func NewStockRequestRepository(q Querier) *StockRequestRepo {
	return &StockRequestRepo{q: q}
}

const requestColumns = `id, requester_id, COALESCE(parent_id, ''), product_id, quantity, remarks, status, created_at, updated_at`

func scanRequest(row pgx.Row) (*entity.StockRequest, error) {
	var sr entity.StockRequest
	err := row.Scan(&sr.ID, &sr.RequesterID, &sr.ParentID, &sr.ProductID,
		&sr.Quantity, &sr.Remarks, &sr.Status, &sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &sr, nil
}

func (r *StockRequestRepo) Create(ctx context.Context, sr *entity.StockRequest) error {
	now := time.Now()
	sr.CreatedAt, sr.UpdatedAt = now, now
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_requests (id, requester_id, parent_id, product_id, quantity, remarks, status, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`,
		sr.ID, sr.RequesterID, sr.ParentID, sr.ProductID, sr.Quantity, sr.Remarks, sr.Status, sr.CreatedAt, sr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock request: %w", err)
	}
	return nil
}

func (r *StockRequestRepo) GetByID(ctx context.Context, id string) (*entity.StockRequest, error) {
	sr, err := scanRequest(r.q.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM stock_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stock request: %w", err)
	}
	return sr, nil
}

func (r *StockRequestRepo) Update(ctx context.Context, sr *entity.StockRequest) error {
	sr.UpdatedAt = time.Now()
	cmd, err := r.q.Exec(ctx, `
		UPDATE stock_requests SET product_id = $2, quantity = $3, remarks = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		sr.ID, sr.ProductID, sr.Quantity, sr.Remarks, sr.Status, sr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockRequestRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// assignedPredicate matches the parent's queue: direct children's requests
// plus, on the admin side, every stockist request.
const assignedPredicate = `
	(parent_id = $1 OR ($2 AND EXISTS (
		SELECT 1 FROM users u WHERE u.id = stock_requests.requester_id AND 'stockist' = ANY(u.roles)
	)))`

func (r *StockRequestRepo) ListAssigned(ctx context.Context, userID string, adminSide bool) ([]*entity.StockRequest, error) {
	return r.list(ctx, `
		SELECT `+requestColumns+` FROM stock_requests
		WHERE `+assignedPredicate+`
		ORDER BY created_at DESC`, userID, adminSide)
}

// ListByRequester excludes approved requests: once approved, a request is
// treated as consumed by the requester's order flow and leaves their list.
func (r *StockRequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*entity.StockRequest, error) {
	return r.list(ctx, `
		SELECT `+requestColumns+` FROM stock_requests
		WHERE requester_id = $1 AND status <> 'approved'
		ORDER BY created_at DESC`, requesterID)
}

func (r *StockRequestRepo) ListApprovedAssigned(ctx context.Context, userID string, adminSide bool) ([]*entity.StockRequest, error) {
	return r.list(ctx, `
		SELECT `+requestColumns+` FROM stock_requests
		WHERE `+assignedPredicate+` AND status = 'approved'
		ORDER BY created_at DESC`, userID, adminSide)
}

func (r *StockRequestRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockRequest, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockRequest
	for rows.Next() {
		sr, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock request: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
