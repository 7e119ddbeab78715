package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/application/sales"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/request"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// In-memory fakes.

type fakeUserRepo struct {
	users        map[string]*entity.User
	getByIDCalls int
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.getByIDCalls++
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) Delete(_ context.Context, id string) error      { delete(f.users, id); return nil }
func (f *fakeUserRepo) List(context.Context, string, int, int) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (f *fakeUserRepo) ListByRole(context.Context, string) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) ListChildren(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) List(context.Context) ([]*entity.Product, error) { return nil, nil }

type stockKey struct{ user, product string }

type fakeStockRepo struct {
	quantities map[stockKey]int64
}

func (f *fakeStockRepo) Adjust(_ context.Context, userID, productID string, delta int64) error {
	k := stockKey{userID, productID}
	next := f.quantities[k] + delta
	if next < 0 {
		return domain.ErrInsufficientStock
	}
	f.quantities[k] = next
	return nil
}

func (f *fakeStockRepo) ListByUser(context.Context, string, int, int) ([]*entity.Stock, int, error) {
	return nil, 0, nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.StockRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, r *entity.StockRequest) error {
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (*entity.StockRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, r *entity.StockRequest) error {
	if _, ok := f.requests[r.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *r
	f.requests[r.ID] = &cp
	return nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeRequestRepo) ListAssigned(_ context.Context, userID string, _ bool) ([]*entity.StockRequest, error) {
	var out []*entity.StockRequest
	for _, r := range f.requests {
		if r.ParentID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByRequester(_ context.Context, requesterID string) ([]*entity.StockRequest, error) {
	var out []*entity.StockRequest
	for _, r := range f.requests {
		if r.RequesterID == requesterID && r.Status != request.StatusApproved {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListApprovedAssigned(_ context.Context, userID string, _ bool) ([]*entity.StockRequest, error) {
	var out []*entity.StockRequest
	for _, r := range f.requests {
		if r.ParentID == userID && r.Status == request.StatusApproved {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner hands the fakes to fn and restores the stock map when fn
// fails, imitating a rollback.
type fakeTxRunner struct {
	stocks   *fakeStockRepo
	orders   *fakeOrderRepo
	requests *fakeRequestRepo
}

func snapshot(m map[stockKey]int64) map[stockKey]int64 {
	cp := make(map[stockKey]int64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func (f *fakeTxRunner) RunOrder(ctx context.Context, fn func(ctx context.Context, r sales.OrderTxRepos) error) error {
	before := snapshot(f.stocks.quantities)
	err := fn(ctx, sales.OrderTxRepos{Stocks: f.stocks, Orders: f.orders})
	if err != nil {
		f.stocks.quantities = before
	}
	return err
}

func (f *fakeTxRunner) RunFulfillment(ctx context.Context, fn func(ctx context.Context, r sales.FulfillTxRepos) error) error {
	before := snapshot(f.stocks.quantities)
	err := fn(ctx, sales.FulfillTxRepos{Stocks: f.stocks, Requests: f.requests})
	if err != nil {
		f.stocks.quantities = before
	}
	return err
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) ListByCreator(_ context.Context, creatorID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CreatorID == creatorID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Fixture: a distributor with one dealer child and one product.

type fixture struct {
	users    *fakeUserRepo
	products *fakeProductRepo
	stocks   *fakeStockRepo
	requests *fakeRequestRepo
	orders   *fakeOrderRepo
	tx       *fakeTxRunner
	reqUC    *sales.RequestUsecase
	orderUC  *sales.OrderUsecase
}

const (
	distributorID = "dist-1"
	dealerID      = "dealer-1"
	productID     = "prod-1"
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:    &fakeUserRepo{users: map[string]*entity.User{}},
		products: &fakeProductRepo{products: map[string]*entity.Product{}},
		stocks:   &fakeStockRepo{quantities: map[stockKey]int64{}},
		requests: &fakeRequestRepo{requests: map[string]*entity.StockRequest{}},
		orders:   &fakeOrderRepo{orders: map[string]*entity.Order{}},
	}
	f.tx = &fakeTxRunner{stocks: f.stocks, orders: f.orders, requests: f.requests}

	f.users.users[distributorID] = &entity.User{
		ID: distributorID, Roles: []string{entity.RoleDistributor}, Status: "active",
	}
	f.users.users[dealerID] = &entity.User{
		ID: dealerID, Roles: []string{entity.RoleDealer}, ParentID: distributorID, Status: "active",
	}
	f.products.products[productID] = &entity.Product{
		ID: productID, Name: "Widget", Price: decimal.NewFromInt(100),
	}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.reqUC = sales.NewRequestUsecase(f.requests, f.users, f.products, f.tx, log)
	f.orderUC = sales.NewOrderUsecase(f.orders, f.products, f.users, f.tx, log)
	return f
}

func TestRequest_ApproveThenFulfillMovesStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stocks.quantities[stockKey{distributorID, productID}] = 10

	created, err := f.reqUC.Create(ctx, dealerID, dto.CreateRequestRequest{
		ProductID: productID, Quantity: 4, Remarks: "restock",
	})
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, created.Status)
	assert.Equal(t, distributorID, created.ParentID, "parent is denormalized at creation")

	// Parent approves via the status endpoint.
	updated, err := f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, updated.Status)

	// Approved requests leave "my requests" but stay in the parent's queue.
	mine, err := f.reqUC.ListMine(ctx, dealerID, []string{entity.RoleDealer})
	require.NoError(t, err)
	assert.Empty(t, mine)

	queue, err := f.reqUC.ListApproved(ctx, distributorID, []string{entity.RoleDistributor})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Contains(t, queue[0].Actions, "mark-fulfilled")

	// Fulfillment moves stock parent -> requester.
	fulfilled, err := f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusFulfilled})
	require.NoError(t, err)
	assert.Equal(t, request.StatusFulfilled, fulfilled.Status)
	assert.Equal(t, int64(6), f.stocks.quantities[stockKey{distributorID, productID}])
	assert.Equal(t, int64(4), f.stocks.quantities[stockKey{dealerID, productID}])
}

func TestRequest_RequesterCannotApproveOwn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.reqUC.Create(ctx, dealerID, dto.CreateRequestRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = f.reqUC.Update(ctx, dealerID, []string{entity.RoleDealer}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusApproved})
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)
}

func TestRequest_FulfillWithoutStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stocks.quantities[stockKey{distributorID, productID}] = 2

	created, err := f.reqUC.Create(ctx, dealerID, dto.CreateRequestRequest{ProductID: productID, Quantity: 5})
	require.NoError(t, err)
	_, err = f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusApproved})
	require.NoError(t, err)

	_, err = f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusFulfilled})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nothing moved and the request stays approved.
	assert.Equal(t, int64(2), f.stocks.quantities[stockKey{distributorID, productID}])
	assert.Equal(t, int64(0), f.stocks.quantities[stockKey{dealerID, productID}])
	stored, err := f.requests.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, stored.Status)
}

func TestRequest_RejectedCanBeRerequestedByRequesterOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.reqUC.Create(ctx, dealerID, dto.CreateRequestRequest{ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusRejected})
	require.NoError(t, err)

	// Parent cannot rerequest on the requester's behalf.
	_, err = f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusRequested})
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)

	back, err := f.reqUC.Update(ctx, dealerID, []string{entity.RoleDealer}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusRequested})
	require.NoError(t, err)
	assert.Equal(t, request.StatusRequested, back.Status)

	// The revived request behaves as pending: the parent may approve again.
	_, err = f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusApproved})
	assert.NoError(t, err)
}

func TestRequest_CreateRequiresHierarchyRole(t *testing.T) {
	f := newFixture(t)
	f.users.users["mkt-1"] = &entity.User{ID: "mkt-1", Roles: []string{entity.RoleMarketing}, Status: "active"}

	_, err := f.reqUC.Create(context.Background(), "mkt-1", dto.CreateRequestRequest{ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRequest_DeleteOnlyOwnPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.reqUC.Create(ctx, dealerID, dto.CreateRequestRequest{ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, f.reqUC.Delete(ctx, distributorID, created.ID), domain.ErrForbidden)

	_, err = f.reqUC.Update(ctx, distributorID, []string{entity.RoleDistributor}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusApproved})
	require.NoError(t, err)
	assert.ErrorIs(t, f.reqUC.Delete(ctx, dealerID, created.ID), domain.ErrConflict)
}

func TestRequest_AdminActsAsParentForStockist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.users["stockist-1"] = &entity.User{
		ID: "stockist-1", Roles: []string{entity.RoleStockist}, Status: "active",
	}
	f.users.users["admin-1"] = &entity.User{ID: "admin-1", Roles: []string{entity.RoleAdmin}, Status: "active"}

	created, err := f.reqUC.Create(ctx, "stockist-1", dto.CreateRequestRequest{ProductID: productID, Quantity: 3})
	require.NoError(t, err)
	assert.Empty(t, created.ParentID, "a top-level stockist has no recorded parent")

	// Any admin-side user may act as the stockist's parent.
	updated, err := f.reqUC.Update(ctx, "admin-1", []string{entity.RoleAdmin}, created.ID,
		dto.UpdateRequestRequest{Status: request.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, updated.Status)
}

func TestRequest_ListLooksUpEachRequesterOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.reqUC.Create(ctx, dealerID, dto.CreateRequestRequest{ProductID: productID, Quantity: 1})
		require.NoError(t, err)
	}

	f.users.getByIDCalls = 0
	out, err := f.reqUC.ListAssigned(ctx, distributorID, []string{entity.RoleDistributor})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 1, f.users.getByIDCalls,
		"one lookup per distinct requester, not per row")
}

func TestOrder_HierarchyTransferMovesStockBothWays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stocks.quantities[stockKey{distributorID, productID}] = 8

	out, err := f.orderUC.Create(ctx, distributorID, dto.CreateOrderRequest{
		ProductID: productID, Quantity: 3, FinalPrice: "250.00", RequestedBy: dealerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)
	assert.Equal(t, int64(5), f.stocks.quantities[stockKey{distributorID, productID}])
	assert.Equal(t, int64(3), f.stocks.quantities[stockKey{dealerID, productID}])
}

func TestOrder_EndCustomerOnlyDebitsCreator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stocks.quantities[stockKey{dealerID, productID}] = 5

	out, err := f.orderUC.Create(ctx, dealerID, dto.CreateOrderRequest{
		ProductID: productID, Quantity: 2, FinalPrice: "199.99",
		FormData: &entity.OrderCustomer{Name: "Acme Signs", Mobile: "555-0100"},
	})
	require.NoError(t, err)
	require.NotNil(t, out.FormData)
	assert.Equal(t, int64(3), f.stocks.quantities[stockKey{dealerID, productID}])
}

func TestOrder_ReceiverAndFormDataAreExclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stocks.quantities[stockKey{dealerID, productID}] = 5

	_, err := f.orderUC.Create(ctx, dealerID, dto.CreateOrderRequest{
		ProductID: productID, Quantity: 1, FinalPrice: "10",
		RequestedBy: distributorID,
		FormData:    &entity.OrderCustomer{Name: "Acme"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orderUC.Create(ctx, dealerID, dto.CreateOrderRequest{
		ProductID: productID, Quantity: 1, FinalPrice: "10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrder_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stocks.quantities[stockKey{dealerID, productID}] = 1

	_, err := f.orderUC.Create(ctx, dealerID, dto.CreateOrderRequest{
		ProductID: productID, Quantity: 2, FinalPrice: "10",
		FormData: &entity.OrderCustomer{Name: "Acme"},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.orders.orders, "no order row on a failed transfer")
	assert.Equal(t, int64(1), f.stocks.quantities[stockKey{dealerID, productID}])
}
