package usecase

import (
	"context"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain/repository"
)

// DashboardUsecase serves the landing-page counters.
type DashboardUsecase struct {
	analytics repository.AnalyticsRepository
}

func NewDashboardUsecase(analytics repository.AnalyticsRepository) *DashboardUsecase {
	return &DashboardUsecase{analytics: analytics}
}

func (u *DashboardUsecase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	c, err := u.analytics.GetDashboardCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Leads:            c.Leads,
		Enquiries:        c.Enquiries,
		Hoardings:        c.Hoardings,
		AvailableSites:   c.AvailableSites,
		Bookings:         c.Bookings,
		Orders:           c.Orders,
		Customers:        c.Customers,
		HierarchyMembers: c.HierarchyMembers,
		PendingRequests:  c.PendingRequests,
	}, nil
}
