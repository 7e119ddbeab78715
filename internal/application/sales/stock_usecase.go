package sales

import (
	"context"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
)

// StockUsecase answers holding queries.
type StockUsecase struct {
	stocks   repository.StockRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewStockUsecase(
	stocks repository.StockRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) *StockUsecase {
	return &StockUsecase{stocks: stocks, products: products, users: users}
}

// ListByUser returns one user's holdings, paginated.
func (u *StockUsecase) ListByUser(ctx context.Context, userID string, page dto.PageRequest) ([]dto.StockResponse, dto.PageResponse, error) {
	page.Defaults()
	ss, total, err := u.stocks.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	return u.withProducts(ctx, ss), dto.NewPageResponse(page, total), nil
}

// ListParent returns the holdings of the caller's parent, so a child sees
// what can be requested. A top-level user (no recorded parent) draws from
// the company pool and gets an empty list here.
func (u *StockUsecase) ListParent(ctx context.Context, userID string, page dto.PageRequest) ([]dto.StockResponse, dto.PageResponse, error) {
	page.Defaults()
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	if user.ParentID == "" {
		return []dto.StockResponse{}, dto.NewPageResponse(page, 0), nil
	}
	ss, total, err := u.stocks.ListByUser(ctx, user.ParentID, page.Limit, page.Offset())
	if err != nil {
		return nil, dto.PageResponse{}, err
	}
	return u.withProducts(ctx, ss), dto.NewPageResponse(page, total), nil
}

func (u *StockUsecase) withProducts(ctx context.Context, ss []*entity.Stock) []dto.StockResponse {
	products := map[string]*entity.Product{}
	out := make([]dto.StockResponse, 0, len(ss))
	for _, s := range ss {
		p, seen := products[s.ProductID]
		if !seen {
			p, _ = u.products.GetByID(ctx, s.ProductID)
			products[s.ProductID] = p
		}
		out = append(out, dto.FromStock(s, p))
	}
	return out
}

// ListProducts returns the sellable catalog.
func (u *StockUsecase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	ps, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, dto.FromProduct(p))
	}
	return out, nil
}
