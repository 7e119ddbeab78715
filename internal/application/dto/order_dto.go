package dto

import (
	"time"

	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// CreateOrderRequest body of POST /api/crmSales/createOrder. Exactly one of
// RequestedBy (hierarchy receiver) or FormData (end-customer snapshot) must
// be set.
type CreateOrderRequest struct {
	ProductID   string                `json:"productId"`
	Quantity    int                   `json:"quantity"`
	FinalPrice  string                `json:"finalPrice"` // decimal as string
	RequestedBy string                `json:"requestedBy,omitempty"`
	FormData    *entity.OrderCustomer `json:"formData,omitempty"`
}

// OrderResponse wire view of an order.
type OrderResponse struct {
	ID          string                `json:"_id"`
	CreatorID   string                `json:"creatorId"`
	ProductID   string                `json:"productId"`
	Product     *ProductResponse      `json:"product,omitempty"`
	Quantity    int                   `json:"quantity"`
	FinalPrice  string                `json:"finalPrice"`
	RequestedBy *UserResponse         `json:"requestedBy,omitempty"`
	FormData    *entity.OrderCustomer `json:"formData,omitempty"`
	Status      string                `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
}
