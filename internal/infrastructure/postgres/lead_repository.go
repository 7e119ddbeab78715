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

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo PostgreSQL adapter for CRM leads.
type LeadRepo struct {
	q Querier
}

func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `id, name, mobile, email, company, location, industry_type, customer_type, status, COALESCE(assigned_to, ''), created_at, updated_at`

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Mobile, &l.Email, &l.Company, &l.Location,
		&l.IndustryType, &l.CustomerType, &l.Status, &l.AssignedTo, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const insertLead = `
	INSERT INTO leads (id, name, mobile, email, company, location, industry_type, customer_type, status, assigned_to, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)`

func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	now := time.Now()
	l.CreatedAt, l.UpdatedAt = now, now
	_, err := r.q.Exec(ctx, insertLead,
		l.ID, l.Name, l.Mobile, l.Email, l.Company, l.Location,
		l.IndustryType, l.CustomerType, l.Status, l.AssignedTo, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// CreateBatch inserts all rows or none, using pgx's implicit-transaction
// batch when called on the pool.
func (r *LeadRepo) CreateBatch(ctx context.Context, leads []*entity.Lead) error {
	now := time.Now()
	batch := &pgx.Batch{}
	for _, l := range leads {
		l.CreatedAt, l.UpdatedAt = now, now
		batch.Queue(insertLead,
			l.ID, l.Name, l.Mobile, l.Email, l.Company, l.Location,
			l.IndustryType, l.CustomerType, l.Status, l.AssignedTo, l.CreatedAt, l.UpdatedAt,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range leads {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert lead: %w", err)
		}
	}
	return nil
}

func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	l, err := scanLead(r.q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

func (r *LeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	l.UpdatedAt = time.Now()
	cmd, err := r.q.Exec(ctx, `
		UPDATE leads SET name = $2, mobile = $3, email = $4, company = $5, location = $6,
			industry_type = $7, customer_type = $8, status = $9, assigned_to = NULLIF($10, ''), updated_at = $11
		WHERE id = $1`,
		l.ID, l.Name, l.Mobile, l.Email, l.Company, l.Location,
		l.IndustryType, l.CustomerType, l.Status, l.AssignedTo, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LeadRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Lead, int, error) {
	term := normalizeSearch(search)
	const where = `($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%')`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM leads WHERE `+where, term).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT `+leadColumns+` FROM leads WHERE `+where+`
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, term, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	return out, total, rows.Err()
}
