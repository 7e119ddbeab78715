package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hoarding is an advertising site in the inventory.
type Hoarding struct {
	ID              string
	Name            string
	Location        string
	Type            string
	Size            string
	Status          string // available, booked, maintenance
	OwnershipType   string // owned, rented
	RentAmount      decimal.Decimal
	City            string
	Area            string
	FacingDirection string
	PricePerMonth   decimal.Decimal
	Latitude        float64
	Longitude       float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
