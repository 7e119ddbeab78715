package dto

import "time"

// CreateCustomerRequest body of POST /api/hoardings/customers.
type CreateCustomerRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Mobile   string   `json:"mobile"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	Area     string   `json:"area"`
	Segments []string `json:"segments"`
}

// UpdateCustomerRequest same shape as create; full replace.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse wire view of a customer.
type CustomerResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Area      string    `json:"area,omitempty"`
	Segments  []string  `json:"segments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
