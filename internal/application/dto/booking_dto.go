package dto

import "time"

// BookingLineRequest one hoarding line in a booking.
type BookingLineRequest struct {
	HoardingID    string `json:"hoardingId"`
	PricePerMonth string `json:"pricePerMonth"`
	TotalMonths   int    `json:"totalMonths"`
}

// CreateBookingRequest body of POST /api/hoardings/createOrder.
type CreateBookingRequest struct {
	Customer         string               `json:"customer"`
	HoardingDetails  []BookingLineRequest `json:"hoardingDetails"`
	BookingStartDate string               `json:"bookingStartDate"` // YYYY-MM-DD
	BookingEndDate   string               `json:"bookingEndDate"`
	Discount         string               `json:"discount"`
	SalesPerson      string               `json:"salesPerson"`
	Status           string               `json:"status"`
	Notes            string               `json:"notes"`
}

// UpdateBookingRequest body of PUT /api/hoardings/updateOrder/:id.
type UpdateBookingRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// BookingLineResponse one line of a booking, totals included.
type BookingLineResponse struct {
	HoardingID    string `json:"hoardingId"`
	PricePerMonth string `json:"pricePerMonth"`
	TotalMonths   int    `json:"totalMonths"`
	TotalAmount   string `json:"totalAmount"`
}

// BookingResponse wire view of a hoarding booking.
type BookingResponse struct {
	ID               string                `json:"_id"`
	CustomerID       string                `json:"customer"`
	HoardingDetails  []BookingLineResponse `json:"hoardingDetails"`
	BookingStartDate string                `json:"bookingStartDate"`
	BookingEndDate   string                `json:"bookingEndDate"`
	Subtotal         string                `json:"subtotal"`
	Discount         string                `json:"discount"`
	TotalAmount      string                `json:"totalAmount"`
	SalesPersonID    string                `json:"salesPerson,omitempty"`
	Status           string                `json:"status"`
	Notes            string                `json:"notes,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}
