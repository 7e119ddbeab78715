// Package access computes which navigational destinations a role set may
// reach. It is pure: no I/O, no clock, same verdict for the same role set,
// cheap enough to call on every request.
package access

import "encoding/json"

// Role is a role tag from the fixed set.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSales         Role = "sales"
	RoleMarketing     Role = "marketing"
	RoleMarketingLead Role = "marketing-lead"
	RoleStockist      Role = "stockist"
	RoleDistributor   Role = "distributor"
	RoleDealer        Role = "dealer"
	RoleITSupport     Role = "itsupport"
	RoleSupervisor    Role = "supervisor"
	RoleEnquiry       Role = "enquiry"
)

// Route is a navigational destination of the SPA.
type Route string

const (
	RouteDashboard Route = "/dashboard"
	RouteLeads     Route = "/leads"
	RouteEnquiries Route = "/enquiries"
	RouteHoardings Route = "/hoardings"
	RouteRequests  Route = "/requests"
	RouteOrders    Route = "/orders"
	RouteCustomers Route = "/customers"
	RouteUsers     Route = "/usersHoarding"
	RouteHierarchy Route = "/hierarchy"
	RouteMyTeam    Route = "/myteam"
)

// Routes lists every gated destination, in table order.
var Routes = []Route{
	RouteDashboard, RouteLeads, RouteEnquiries, RouteHoardings,
	RouteRequests, RouteOrders, RouteCustomers, RouteUsers,
	RouteHierarchy, RouteMyTeam,
}

// privileged are the roles whose presence disables the marketing-lead-only
// restriction.
var privileged = []Role{
	RoleAdmin, RoleSales, RoleMarketing, RoleStockist, RoleDistributor, RoleDealer,
}

// ParseRoles decodes a persisted role claim (a JSON array of tags).
// Missing, malformed or non-array input yields nil: no privileges, never an
// error. A garbled claim must degrade to the most restrictive
// interpretation, not crash or elevate.
func ParseRoles(raw []byte) []Role {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	roles := make([]Role, 0, len(tags))
	for _, t := range tags {
		roles = append(roles, Role(t))
	}
	return roles
}

// Verdict is the access decision for one role set.
type Verdict struct {
	Admin             bool
	Sales             bool
	Marketing         bool
	Stockist          bool
	Distributor       bool
	Dealer            bool
	MarketingLead     bool
	MarketingLeadOnly bool
}

// Resolve computes the verdict for a role set. An empty or nil set is an
// authenticated user with no privileges, not an error.
func Resolve(roles []Role) Verdict {
	has := func(want Role) bool {
		for _, r := range roles {
			if r == want {
				return true
			}
		}
		return false
	}
	v := Verdict{
		Admin:         has(RoleAdmin),
		Sales:         has(RoleSales),
		Marketing:     has(RoleMarketing),
		Stockist:      has(RoleStockist),
		Distributor:   has(RoleDistributor),
		Dealer:        has(RoleDealer),
		MarketingLead: has(RoleMarketingLead),
	}
	anyPrivileged := false
	for _, p := range privileged {
		if has(p) {
			anyPrivileged = true
			break
		}
	}
	v.MarketingLeadOnly = v.MarketingLead && !anyPrivileged
	return v
}

// Allowed reports whether the route may be rendered for this role set.
// First matching rule governs:
//  1. dashboard/requests/orders/customers: denied when marketing-lead-only.
//  2. hierarchy: admin|sales|marketing only.
//  3. myteam: stockist|distributor only.
//  4. everything else: allowed once authenticated.
func (v Verdict) Allowed(route Route) bool {
	switch route {
	case RouteDashboard, RouteRequests, RouteOrders, RouteCustomers:
		return !v.MarketingLeadOnly
	case RouteHierarchy:
		return v.Admin || v.Sales || v.Marketing
	case RouteMyTeam:
		return v.Stockist || v.Distributor
	default:
		return true
	}
}

// RedirectFor returns where a denied route lands: the leads surface for a
// marketing-lead-only user, the dashboard for everyone else. For allowed
// routes it returns the route itself.
func (v Verdict) RedirectFor(route Route) Route {
	if v.Allowed(route) {
		return route
	}
	if v.MarketingLeadOnly {
		return RouteLeads
	}
	return RouteDashboard
}

// MenuVisible reports sidebar visibility. Customers and user management are
// additionally restricted to admin|sales|marketing even for users the
// router would let through.
func (v Verdict) MenuVisible(route Route) bool {
	if !v.Allowed(route) {
		return false
	}
	switch route {
	case RouteCustomers, RouteUsers:
		return v.Admin || v.Sales || v.Marketing
	default:
		return true
	}
}

// AllowedRoutes returns the routes this role set may visit, in table order.
func (v Verdict) AllowedRoutes() []Route {
	var out []Route
	for _, r := range Routes {
		if v.Allowed(r) {
			out = append(out, r)
		}
	}
	return out
}
