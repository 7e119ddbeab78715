package dto

import "time"

// LoginRequest credentials for POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token plus the authenticated user. Role is also set as a
// cookie-readable claim for the SPA's persisted role claim.
type LoginResponse struct {
	Token string       `json:"token"`
	Role  []string     `json:"role"`
	User  UserResponse `json:"user"`
}

// CreateEmsUserRequest creates a user, hierarchical or flat.
type CreateEmsUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role"`
	ParentID string `json:"parentId"`
}

// UpdateEmsUserRequest changes a flat user's role.
type UpdateEmsUserRequest struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// UserResponse public view of a user (no password hash).
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Role      []string  `json:"role"`
	ParentID  string    `json:"parentId,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MeResponse the authenticated user plus the access verdict for the SPA's
// router and sidebar.
type MeResponse struct {
	UserResponse
	AllowedRoutes []string `json:"allowedRoutes"`
	VisibleMenu   []string `json:"visibleMenu"`
}
