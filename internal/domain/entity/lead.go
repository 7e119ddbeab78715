package entity

import "time"

// Lead is a flat CRM lead outside the hierarchy core.
type Lead struct {
	ID           string
	Name         string
	Mobile       string
	Email        string
	Company      string
	Location     string
	IndustryType string
	CustomerType string
	Status       string
	AssignedTo   string // user id, optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
