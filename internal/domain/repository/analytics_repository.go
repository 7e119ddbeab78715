package repository

import "context"

// DashboardCounts are the headline figures of the dashboard page.
type DashboardCounts struct {
	Leads            int64
	Enquiries        int64
	Hoardings        int64
	AvailableSites   int64
	Bookings         int64
	Orders           int64
	Customers        int64
	HierarchyMembers int64
	PendingRequests  int64
}

// AnalyticsRepository read-only aggregate queries for the dashboard.
type AnalyticsRepository interface {
	GetDashboardCounts(ctx context.Context) (DashboardCounts, error)
}
