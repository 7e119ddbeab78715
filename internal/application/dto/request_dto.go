package dto

import "time"

// CreateRequestRequest body of POST /api/crmSales/createRequest.
type CreateRequestRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Remarks   string `json:"remarks"`
}

// UpdateRequestRequest body of PUT /api/crmSales/updateRequest/:id. A status
// change is routed through the lifecycle state machine; quantity/remarks
// edits are only accepted while the request is still pending.
type UpdateRequestRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Remarks   string `json:"remarks"`
	Status    string `json:"status"`
}

// StockRequestResponse wire view of a stock request.
type StockRequestResponse struct {
	ID          string           `json:"_id"`
	RequesterID string           `json:"requesterId"`
	ParentID    string           `json:"parentId,omitempty"`
	ProductID   string           `json:"productId"`
	Product     *ProductResponse `json:"product,omitempty"`
	Quantity    int              `json:"quantity"`
	Remarks     string           `json:"remarks"`
	Status      string           `json:"status"`
	Actions     []string         `json:"actions,omitempty"` // what the caller may do next
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProductResponse wire view of a product.
type ProductResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"productName"`
	SKU   string `json:"sku,omitempty"`
	Price string `json:"price"`
}

// StockResponse wire view of a stock holding.
type StockResponse struct {
	ID        string           `json:"_id"`
	UserID    string           `json:"userId"`
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int64            `json:"quantity"`
}

// StockListResponse page of stocks, shaped as the SPA reads it.
type StockListResponse struct {
	Stocks []StockResponse `json:"stocks"`
}
