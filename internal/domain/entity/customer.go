package entity

import "time"

// Customer is a hoarding customer (billing contact for bookings).
type Customer struct {
	ID        string
	Name      string
	Email     string
	Mobile    string
	Address   string
	City      string
	Area      string
	Segments  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
