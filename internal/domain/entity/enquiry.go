package entity

import "time"

// EnquiryNote is an append-only note on an enquiry.
type EnquiryNote struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Enquiry is an inbound enquiry; the only surface a marketing-lead-only
// user may work.
type Enquiry struct {
	ID        string
	Name      string
	Mobile    string
	Email     string
	Company   string
	Notes     []EnquiryNote
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
