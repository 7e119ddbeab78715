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

var _ repository.HoardingRepository = (*HoardingRepo)(nil)

// HoardingRepo PostgreSQL adapter for hoardings.
type HoardingRepo struct {
	q Querier
}

func NewHoardingRepository(q Querier) *HoardingRepo {
	return &HoardingRepo{q: q}
}

const hoardingColumns = `id, name, location, type, size, status, ownership_type, rent_amount, city, area, facing_direction, price_per_month, latitude, longitude, created_at, updated_at`

func scanHoarding(row pgx.Row) (*entity.Hoarding, error) {
	var h entity.Hoarding
	err := row.Scan(&h.ID, &h.Name, &h.Location, &h.Type, &h.Size, &h.Status,
		&h.OwnershipType, &h.RentAmount, &h.City, &h.Area, &h.FacingDirection,
		&h.PricePerMonth, &h.Latitude, &h.Longitude, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HoardingRepo) Create(ctx context.Context, h *entity.Hoarding) error {
	now := time.Now()
	h.CreatedAt, h.UpdatedAt = now, now
	_, err := r.q.Exec(ctx, `
		INSERT INTO hoardings (id, name, location, type, size, status, ownership_type, rent_amount, city, area, facing_direction, price_per_month, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		h.ID, h.Name, h.Location, h.Type, h.Size, h.Status, h.OwnershipType,
		h.RentAmount, h.City, h.Area, h.FacingDirection, h.PricePerMonth,
		h.Latitude, h.Longitude, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hoarding: %w", err)
	}
	return nil
}

func (r *HoardingRepo) GetByID(ctx context.Context, id string) (*entity.Hoarding, error) {
	h, err := scanHoarding(r.q.QueryRow(ctx, `SELECT `+hoardingColumns+` FROM hoardings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get hoarding: %w", err)
	}
	return h, nil
}

func (r *HoardingRepo) Update(ctx context.Context, h *entity.Hoarding) error {
	h.UpdatedAt = time.Now()
	cmd, err := r.q.Exec(ctx, `
		UPDATE hoardings SET name = $2, location = $3, type = $4, size = $5, status = $6,
			ownership_type = $7, rent_amount = $8, city = $9, area = $10, facing_direction = $11,
			price_per_month = $12, latitude = $13, longitude = $14, updated_at = $15
		WHERE id = $1`,
		h.ID, h.Name, h.Location, h.Type, h.Size, h.Status, h.OwnershipType,
		h.RentAmount, h.City, h.Area, h.FacingDirection, h.PricePerMonth,
		h.Latitude, h.Longitude, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update hoarding: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HoardingRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Hoarding, int, error) {
	term := normalizeSearch(search)
	const where = `($1 = '' OR name ILIKE '%' || $1 || '%' OR city ILIKE '%' || $1 || '%' OR area ILIKE '%' || $1 || '%')`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM hoardings WHERE `+where, term).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count hoardings: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT `+hoardingColumns+` FROM hoardings WHERE `+where+`
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, term, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list hoardings: %w", err)
	}
	defer rows.Close()

	var out []*entity.Hoarding
	for rows.Next() {
		h, err := scanHoarding(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan hoarding: %w", err)
		}
		out = append(out, h)
	}
	return out, total, rows.Err()
}
