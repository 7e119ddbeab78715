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

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo PostgreSQL adapter for hoarding bookings. The lines are a
// jsonb column: they are written once at creation and always read whole.
type BookingRepo struct {
	q Querier
}

func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

const bookingColumns = `id, customer_id, lines, booking_start_date, booking_end_date, subtotal, discount, total_amount, COALESCE(sales_person_id, ''), status, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	var lines []byte
	err := row.Scan(&b.ID, &b.CustomerID, &lines, &b.BookingStartDate, &b.BookingEndDate,
		&b.Subtotal, &b.Discount, &b.TotalAmount, &b.SalesPersonID, &b.Status, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &b.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal booking lines: %w", err)
		}
	}
	return &b, nil
}

func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	lines, err := json.Marshal(b.Lines)
	if err != nil {
		return fmt.Errorf("marshal booking lines: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO bookings (id, customer_id, lines, booking_start_date, booking_end_date, subtotal, discount, total_amount, sales_person_id, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13)`,
		b.ID, b.CustomerID, lines, b.BookingStartDate, b.BookingEndDate,
		b.Subtotal, b.Discount, b.TotalAmount, b.SalesPersonID, b.Status, b.Notes,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	b, err := scanBooking(r.q.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Update persists status and notes. Lines and amounts are immutable.
func (r *BookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	b.UpdatedAt = time.Now()
	cmd, err := r.q.Exec(ctx, `
		UPDATE bookings SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Status, b.Notes, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) List(ctx context.Context) ([]*entity.Booking, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
