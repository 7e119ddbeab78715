package entity

import "time"

// StockRequest asks the requester's parent for inventory.
// ParentID is denormalized from the requester at creation time so the
// parent's queue can be answered with a single predicate.
type StockRequest struct {
	ID          string
	RequesterID string
	ParentID    string
	ProductID   string
	Quantity    int
	Remarks     string
	Status      string // see internal/domain/request
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
