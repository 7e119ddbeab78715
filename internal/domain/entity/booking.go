package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingLine is one hoarding booked for a number of months.
type BookingLine struct {
	HoardingID    string          `json:"hoardingId"`
	PricePerMonth decimal.Decimal `json:"pricePerMonth"`
	TotalMonths   int             `json:"totalMonths"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// Booking is a hoarding order: one customer booking one or more hoardings
// for a date range. Totals are recomputed server-side from the lines.
type Booking struct {
	ID               string
	CustomerID       string
	Lines            []BookingLine
	BookingStartDate time.Time
	BookingEndDate   time.Time
	Subtotal         decimal.Decimal
	Discount         decimal.Decimal
	TotalAmount      decimal.Decimal
	SalesPersonID    string
	Status           string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
