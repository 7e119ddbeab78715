package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// OrderUsecase commits stock transfers.
type OrderUsecase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	tx       TxRunner
	log      *logger.Logger
}

func NewOrderUsecase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	tx TxRunner,
	log *logger.Logger,
) *OrderUsecase {
	return &OrderUsecase{orders: orders, products: products, users: users, tx: tx, log: log}
}

// Create debits the creator's stock and, for a hierarchy transfer, credits
// the receiver, all in one transaction. Exactly one of requestedBy and
// formData must be set: an order goes down the hierarchy or out to an end
// customer, never both.
func (u *OrderUsecase) Create(ctx context.Context, creatorID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if req.ProductID == "" || req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if (req.RequestedBy == "") == (req.FormData == nil) {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(req.FinalPrice)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := u.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}
	var receiver *entity.User
	if req.RequestedBy != "" {
		receiver, err = u.users.GetByID(ctx, req.RequestedBy)
		if err != nil {
			return nil, err
		}
	}

	o := &entity.Order{
		ID:          uuid.NewString(),
		CreatorID:   creatorID,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		FinalPrice:  price,
		RequestedBy: req.RequestedBy,
		Customer:    req.FormData,
		Status:      "completed",
	}

	err = u.tx.RunOrder(ctx, func(ctx context.Context, tr OrderTxRepos) error {
		if err := tr.Stocks.Adjust(ctx, creatorID, o.ProductID, -int64(o.Quantity)); err != nil {
			return err
		}
		if o.RequestedBy != "" {
			if err := tr.Stocks.Adjust(ctx, o.RequestedBy, o.ProductID, int64(o.Quantity)); err != nil {
				return err
			}
		}
		return tr.Orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	u.log.Info().Str("order_id", o.ID).Str("creator_id", creatorID).
		Int("quantity", o.Quantity).Bool("hierarchy", o.RequestedBy != "").Msg("order created")

	p, _ := u.products.GetByID(ctx, o.ProductID)
	resp := dto.FromOrder(o, p, receiver)
	return &resp, nil
}

// ListMine returns the caller's orders, newest first.
func (u *OrderUsecase) ListMine(ctx context.Context, creatorID string) ([]dto.OrderResponse, error) {
	os, err := u.orders.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	products := map[string]*entity.Product{}
	out := make([]dto.OrderResponse, 0, len(os))
	for _, o := range os {
		p, seen := products[o.ProductID]
		if !seen {
			p, _ = u.products.GetByID(ctx, o.ProductID)
			products[o.ProductID] = p
		}
		var receiver *entity.User
		if o.RequestedBy != "" {
			receiver, _ = u.users.GetByID(ctx, o.RequestedBy)
		}
		out = append(out, dto.FromOrder(o, p, receiver))
	}
	return out, nil
}
