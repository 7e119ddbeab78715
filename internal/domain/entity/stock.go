package entity

import "time"

// Stock is the current holding of a product by a hierarchy member.
// One row per (user, product).
type Stock struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}
