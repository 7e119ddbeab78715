package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arcisai/crm-backend/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregate queries for the dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDashboardCounts gathers every counter in one round trip.
func (r *AnalyticsRepo) GetDashboardCounts(ctx context.Context) (repository.DashboardCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM leads),
	    (SELECT COUNT(*) FROM enquiries),
	    (SELECT COUNT(*) FROM hoardings),
	    (SELECT COUNT(*) FROM hoardings WHERE status = 'available'),
	    (SELECT COUNT(*) FROM bookings),
	    (SELECT COUNT(*) FROM orders),
	    (SELECT COUNT(*) FROM customers),
	    (SELECT COUNT(*) FROM users WHERE roles && ARRAY['stockist','distributor','dealer']),
	    (SELECT COUNT(*) FROM stock_requests WHERE status IN ('pending','requested'))`

	var c repository.DashboardCounts
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.Leads, &c.Enquiries, &c.Hoardings, &c.AvailableSites,
		&c.Bookings, &c.Orders, &c.Customers, &c.HierarchyMembers, &c.PendingRequests,
	)
	if err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return c, nil
}
