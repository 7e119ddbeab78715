package entity

import "time"

// Valid role tags for User. A user holds a set of these, not a single role.
const (
	RoleAdmin         = "admin"
	RoleSales         = "sales"
	RoleMarketing     = "marketing"
	RoleMarketingLead = "marketing-lead"
	RoleStockist      = "stockist"
	RoleDistributor   = "distributor"
	RoleDealer        = "dealer"
	RoleITSupport     = "itsupport"
	RoleSupervisor    = "supervisor"
	RoleEnquiry       = "enquiry"
)

// User represents a system user. Hierarchy roles (stockist, distributor,
// dealer) carry a ParentID pointing at the user who created them; the
// top-level stockist's parent is an admin/sales/marketing user.
type User struct {
	ID           string
	Name         string
	Email        string
	Mobile       string
	PasswordHash string // bcrypt hash, never plaintext past login
	Roles        []string
	ParentID     string // empty for non-hierarchy users
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user holds the given role tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user holds at least one of the given tags.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}
