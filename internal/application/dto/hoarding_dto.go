package dto

import "time"

// CreateHoardingRequest body of POST /api/hoardings/createHoarding.
type CreateHoardingRequest struct {
	Name            string  `json:"name"`
	Location        string  `json:"location"`
	Type            string  `json:"type"`
	Size            string  `json:"size"`
	Status          string  `json:"status"`
	OwnershipType   string  `json:"ownershipType"`
	RentAmount      string  `json:"rentAmount"`
	City            string  `json:"city"`
	Area            string  `json:"area"`
	FacingDirection string  `json:"facingDirection"`
	PricePerMonth   string  `json:"pricePerMonth"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// UpdateHoardingRequest body of POST /api/hoardings/updateHoarding/:id.
// The original page only flips status.
type UpdateHoardingRequest struct {
	Status string `json:"status"`
}

// HoardingResponse wire view of a hoarding.
type HoardingResponse struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Type            string    `json:"type,omitempty"`
	Size            string    `json:"size,omitempty"`
	Status          string    `json:"status"`
	OwnershipType   string    `json:"ownershipType"`
	RentAmount      string    `json:"rentAmount"`
	City            string    `json:"city,omitempty"`
	Area            string    `json:"area,omitempty"`
	FacingDirection string    `json:"facingDirection,omitempty"`
	PricePerMonth   string    `json:"pricePerMonth"`
	Latitude        float64   `json:"latitude,omitempty"`
	Longitude       float64   `json:"longitude,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
