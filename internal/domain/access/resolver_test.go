package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcisai/crm-backend/internal/domain/access"
)

func TestParseRoles(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []access.Role
	}{
		{"valid array", `["admin","sales"]`, []access.Role{access.RoleAdmin, access.RoleSales}},
		{"empty array", `[]`, []access.Role{}},
		{"missing", ``, nil},
		{"malformed json", `{admin`, nil},
		{"non-array", `{"role":"admin"}`, nil},
		{"number", `42`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.ParseRoles([]byte(tt.raw)))
		})
	}
}

// A pure marketing-lead user is confined to the leads/enquiries surface.
func TestResolve_MarketingLeadOnly(t *testing.T) {
	v := access.Resolve([]access.Role{access.RoleMarketingLead})

	assert.True(t, v.MarketingLeadOnly)
	for _, denied := range []access.Route{
		access.RouteDashboard, access.RouteRequests, access.RouteOrders,
		access.RouteCustomers, access.RouteHierarchy, access.RouteMyTeam,
	} {
		assert.False(t, v.Allowed(denied), "route %s must be denied", denied)
		assert.Equal(t, access.RouteLeads, v.RedirectFor(denied),
			"denied route %s must land on /leads", denied)
	}
	assert.True(t, v.Allowed(access.RouteLeads))
	assert.True(t, v.Allowed(access.RouteEnquiries))
	assert.True(t, v.Allowed(access.RouteHoardings))
}

// Holding marketing-lead together with any privileged role lifts the
// restriction.
func TestResolve_MarketingLeadWithPrivilegedRole(t *testing.T) {
	for _, priv := range []access.Role{
		access.RoleAdmin, access.RoleSales, access.RoleMarketing,
		access.RoleStockist, access.RoleDistributor, access.RoleDealer,
	} {
		v := access.Resolve([]access.Role{access.RoleMarketingLead, priv})
		assert.False(t, v.MarketingLeadOnly, "marketing-lead + %s is not lead-only", priv)
		assert.True(t, v.Allowed(access.RouteDashboard))
	}
}

// Non-privileged overlay roles do not lift the restriction.
func TestResolve_MarketingLeadWithUnprivilegedRole(t *testing.T) {
	v := access.Resolve([]access.Role{access.RoleMarketingLead, access.RoleITSupport})
	assert.True(t, v.MarketingLeadOnly)
}

func TestResolve_AdminHierarchyNotMyTeam(t *testing.T) {
	v := access.Resolve([]access.Role{access.RoleAdmin})

	assert.True(t, v.Allowed(access.RouteHierarchy))
	assert.False(t, v.Allowed(access.RouteMyTeam), "admin is not stockist/distributor")
	assert.Equal(t, access.RouteDashboard, v.RedirectFor(access.RouteMyTeam))
}

func TestResolve_StockistMyTeamNotHierarchy(t *testing.T) {
	v := access.Resolve([]access.Role{access.RoleStockist})

	assert.True(t, v.Allowed(access.RouteMyTeam))
	assert.False(t, v.Allowed(access.RouteHierarchy))
	assert.Equal(t, access.RouteDashboard, v.RedirectFor(access.RouteHierarchy))
}

// Empty and malformed claims must yield identical decisions: gated routes
// denied, fallback to /dashboard, no elevation.
func TestResolve_EmptyAndMalformedClaimEquivalent(t *testing.T) {
	empty := access.Resolve(nil)
	malformed := access.Resolve(access.ParseRoles([]byte(`not json`)))

	for _, r := range access.Routes {
		assert.Equal(t, empty.Allowed(r), malformed.Allowed(r), "route %s", r)
		assert.Equal(t, empty.RedirectFor(r), malformed.RedirectFor(r), "route %s", r)
	}
	assert.False(t, empty.Allowed(access.RouteHierarchy))
	assert.False(t, empty.Allowed(access.RouteMyTeam))
	assert.Equal(t, access.RouteDashboard, empty.RedirectFor(access.RouteHierarchy))
	// Not marketing-lead-only, so the general surfaces stay reachable.
	assert.True(t, empty.Allowed(access.RouteDashboard))
}

// Sidebar-only gates: customers and user management need admin/sales/
// marketing even when the router lets the route through.
func TestMenuVisible_SidebarGates(t *testing.T) {
	dealer := access.Resolve([]access.Role{access.RoleDealer})
	assert.True(t, dealer.Allowed(access.RouteCustomers), "router allows customers for dealer")
	assert.False(t, dealer.MenuVisible(access.RouteCustomers), "sidebar hides customers for dealer")
	assert.False(t, dealer.MenuVisible(access.RouteUsers))

	marketing := access.Resolve([]access.Role{access.RoleMarketing})
	assert.True(t, marketing.MenuVisible(access.RouteCustomers))
	assert.True(t, marketing.MenuVisible(access.RouteUsers))
}

// Same role set, same verdict: the resolver must be referentially
// transparent so callers can evaluate it per render.
func TestResolve_Deterministic(t *testing.T) {
	roles := []access.Role{access.RoleStockist, access.RoleMarketingLead}
	a := access.Resolve(roles)
	b := access.Resolve(roles)
	assert.Equal(t, a, b)
	assert.Equal(t, a.AllowedRoutes(), b.AllowedRoutes())
}
