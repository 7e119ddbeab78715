package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item moved through the hierarchy.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
