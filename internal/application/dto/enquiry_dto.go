package dto

import (
	"time"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// CreateEnquiryRequest body of POST /api/hoardings/enquiries.
type CreateEnquiryRequest struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

// UpdateEnquiryRequest body of PUT /api/hoardings/enquiries/:id. NewNotes
// are appended; existing notes are immutable.
type UpdateEnquiryRequest struct {
	Name     string   `json:"name"`
	Mobile   string   `json:"mobile"`
	Email    string   `json:"email"`
	Company  string   `json:"company"`
	Status   string   `json:"status"`
	NewNotes []string `json:"newNotes"`
}

// EnquiryResponse wire view of an enquiry.
type EnquiryResponse struct {
	ID        string               `json:"_id"`
	Name      string               `json:"name"`
	Mobile    string               `json:"mobile"`
	Email     string               `json:"email"`
	Company   string               `json:"company,omitempty"`
	Notes     []entity.EnquiryNote `json:"notes"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
