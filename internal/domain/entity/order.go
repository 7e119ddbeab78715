package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderCustomer is the end-customer snapshot embedded in an order when the
// receiver is not a hierarchy member.
type OrderCustomer struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Company  string `json:"company,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Order is a committed transfer of product, either down the hierarchy
// (RequestedBy set) or to an end customer (Customer set). Exactly one of
// the two is populated. Orders are not linked to the stock request they
// may have fulfilled.
type Order struct {
	ID          string
	CreatorID   string
	ProductID   string
	Quantity    int
	FinalPrice  decimal.Decimal
	RequestedBy string // receiving hierarchy member, empty for end customer
	Customer    *OrderCustomer
	Status      string
	CreatedAt   time.Time
}
