// Package sales holds the stock movement usecases: requests, orders and
// holdings. Every stock mutation runs inside a transaction so a crash
// between debit and credit never strands inventory.
package sales

import (
	"context"

	"github.com/arcisai/crm-backend/internal/domain/repository"
)

// OrderTxRepos are the repositories bound to one order transaction.
type OrderTxRepos struct {
	Stocks repository.StockRepository
	Orders repository.OrderRepository
}

// FulfillTxRepos are the repositories bound to one fulfillment transaction.
type FulfillTxRepos struct {
	Stocks   repository.StockRepository
	Requests repository.StockRequestRepository
}

// TxRunner runs a function against transaction-bound repositories.
// The transaction commits when fn returns nil and rolls back otherwise.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(ctx context.Context, r OrderTxRepos) error) error
	RunFulfillment(ctx context.Context, fn func(ctx context.Context, r FulfillTxRepos) error) error
}
