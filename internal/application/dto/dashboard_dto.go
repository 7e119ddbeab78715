package dto

// DashboardResponse headline counts for GET /api/admin/getDashboardData.
type DashboardResponse struct {
	Leads            int64 `json:"leads"`
	Enquiries        int64 `json:"enquiries"`
	Hoardings        int64 `json:"hoardings"`
	AvailableSites   int64 `json:"availableSites"`
	Bookings         int64 `json:"bookings"`
	Orders           int64 `json:"orders"`
	Customers        int64 `json:"customers"`
	HierarchyMembers int64 `json:"hierarchyMembers"`
	PendingRequests  int64 `json:"pendingRequests"`
}
