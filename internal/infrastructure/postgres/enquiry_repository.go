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

var _ repository.EnquiryRepository = (*EnquiryRepo)(nil)

// EnquiryRepo PostgreSQL adapter for enquiries. Notes are a jsonb column
// since they are only ever read as a whole.
type EnquiryRepo struct {
	q Querier
}

func NewEnquiryRepository(q Querier) *EnquiryRepo {
	return &EnquiryRepo{q: q}
}

func marshalNotes(notes []entity.EnquiryNote) ([]byte, error) {
	if notes == nil {
		notes = []entity.EnquiryNote{}
	}
	return json.Marshal(notes)
}

func scanEnquiry(row pgx.Row) (*entity.Enquiry, error) {
	var e entity.Enquiry
	var notes []byte
	err := row.Scan(&e.ID, &e.Name, &e.Mobile, &e.Email, &e.Company, &notes,
		&e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &e.Notes); err != nil {
			return nil, fmt.Errorf("unmarshal enquiry notes: %w", err)
		}
	}
	return &e, nil
}

const enquiryColumns = `id, name, mobile, email, company, notes, status, created_at, updated_at`

func (r *EnquiryRepo) Create(ctx context.Context, e *entity.Enquiry) error {
	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	notes, err := marshalNotes(e.Notes)
	if err != nil {
		return fmt.Errorf("marshal enquiry notes: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO enquiries (id, name, mobile, email, company, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Name, e.Mobile, e.Email, e.Company, notes, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (r *EnquiryRepo) GetByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	e, err := scanEnquiry(r.q.QueryRow(ctx, `SELECT `+enquiryColumns+` FROM enquiries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get enquiry: %w", err)
	}
	return e, nil
}

func (r *EnquiryRepo) Update(ctx context.Context, e *entity.Enquiry) error {
	e.UpdatedAt = time.Now()
	notes, err := marshalNotes(e.Notes)
	if err != nil {
		return fmt.Errorf("marshal enquiry notes: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE enquiries SET name = $2, mobile = $3, email = $4, company = $5, notes = $6, status = $7, updated_at = $8
		WHERE id = $1`,
		e.ID, e.Name, e.Mobile, e.Email, e.Company, notes, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update enquiry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EnquiryRepo) List(ctx context.Context) ([]*entity.Enquiry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+enquiryColumns+` FROM enquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	var out []*entity.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
