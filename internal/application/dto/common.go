package dto

// APIResponse is the `{success, data|message}` envelope the SPA expects.
type APIResponse struct {
	Success bool          `json:"success"`
	Data    interface{}   `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
	Page    *PageResponse `json:"page,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKPage wraps a page of data plus its pagination metadata.
func OKPage(data interface{}, page PageResponse) APIResponse {
	return APIResponse{Success: true, Data: data, Page: &page}
}

// ErrorResponse is the HTTP error body. Success is always false; Code is a
// stable machine-readable tag.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fail builds an error body.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// PageRequest pagination for list endpoints (1-based page, as the SPA sends).
type PageRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// Defaults applies default paging values.
func (p *PageRequest) Defaults() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 10
	}
}

// Offset converts the 1-based page to a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse pagination metadata in responses.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPageResponse computes TotalPages from the match count.
func NewPageResponse(req PageRequest, total int) PageResponse {
	pages := total / req.Limit
	if total%req.Limit != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return PageResponse{Page: req.Page, Limit: req.Limit, Total: total, TotalPages: pages}
}
