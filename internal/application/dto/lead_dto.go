package dto

import "time"

// CreateLeadRequest body of POST /api/crmSales/createLead.
type CreateLeadRequest struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	IndustryType string `json:"industryType"`
	CustomerType string `json:"customerType"`
}

// UpdateLeadRequest body of PUT /api/crmSales/updateLead?id=.
type UpdateLeadRequest struct {
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	IndustryType string `json:"industryType"`
	CustomerType string `json:"customerType"`
	Status       string `json:"status"`
	AssignedTo   string `json:"assignedTo"`
}

// BulkUploadRequest pre-parsed spreadsheet rows (parsing is the client's
// job; the server only persists).
type BulkUploadRequest struct {
	Data []CreateLeadRequest `json:"data"`
}

// LeadResponse wire view of a lead.
type LeadResponse struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	Location     string    `json:"location,omitempty"`
	IndustryType string    `json:"industryType,omitempty"`
	CustomerType string    `json:"customerType,omitempty"`
	Status       string    `json:"status"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
