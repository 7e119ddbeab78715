package sales

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	"github.com/arcisai/crm-backend/internal/domain/request"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// RequestUsecase drives the stock-request lifecycle.
type RequestUsecase struct {
	requests repository.StockRequestRepository
	users    repository.UserRepository
	products repository.ProductRepository
	tx       TxRunner
	log      *logger.Logger
}

func NewRequestUsecase(
	requests repository.StockRequestRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	tx TxRunner,
	log *logger.Logger,
) *RequestUsecase {
	return &RequestUsecase{requests: requests, users: users, products: products, tx: tx, log: log}
}

// adminSide reports whether the actor sees stockist requests in their queue
// in addition to their direct children's.
func adminSide(roles []string) bool {
	for _, r := range roles {
		if r == entity.RoleAdmin || r == entity.RoleSales || r == entity.RoleMarketing {
			return true
		}
	}
	return false
}

// Create opens a pending request against the requester's parent. The parent
// is resolved and denormalized onto the request at creation time.
func (u *RequestUsecase) Create(ctx context.Context, requesterID string, req dto.CreateRequestRequest) (*dto.StockRequestResponse, error) {
	if req.ProductID == "" || req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	requester, err := u.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !requester.HasAnyRole(entity.RoleStockist, entity.RoleDistributor, entity.RoleDealer) {
		return nil, domain.ErrForbidden
	}
	if _, err := u.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	r := &entity.StockRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		ParentID:    requester.ParentID,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Remarks:     strings.TrimSpace(req.Remarks),
		Status:      request.StatusPending,
	}
	if err := u.requests.Create(ctx, r); err != nil {
		return nil, err
	}

	u.log.Info().Str("request_id", r.ID).Str("requester_id", requesterID).
		Int("quantity", req.Quantity).Msg("stock request created")
	return u.toResponse(ctx, r, request.Actor{UserID: requesterID, Roles: requester.Roles}), nil
}

// Update applies a lifecycle transition (via the target status) or, while
// the request is still pending and the caller owns it, edits quantity and
// remarks. Fulfillment additionally moves stock from the fulfilling parent
// to the requester inside one transaction.
func (u *RequestUsecase) Update(ctx context.Context, actorID string, actorRoles []string, id string, req dto.UpdateRequestRequest) (*dto.StockRequestResponse, error) {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	requester, err := u.users.GetByID(ctx, r.RequesterID)
	if err != nil {
		return nil, err
	}

	actor := request.Actor{UserID: actorID, Roles: actorRoles}
	subject := request.Subject{
		RequesterID:    r.RequesterID,
		ParentID:       r.ParentID,
		RequesterRoles: requester.Roles,
		Status:         r.Status,
	}

	if req.Status != "" && request.Normalize(req.Status) != request.Normalize(r.Status) {
		action, ok := request.StatusToAction(req.Status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		next, err := request.Apply(subject, actor, action)
		if err != nil {
			return nil, err
		}
		if action == request.ActionFulfill {
			if err := u.fulfill(ctx, r, actorID, next); err != nil {
				return nil, err
			}
		} else {
			r.Status = next
			if err := u.requests.Update(ctx, r); err != nil {
				return nil, err
			}
		}
		u.log.Info().Str("request_id", r.ID).Str("actor_id", actorID).
			Str("action", string(action)).Str("status", r.Status).Msg("stock request transitioned")
		return u.toResponse(ctx, r, actor), nil
	}

	// Field edits: requester only, pending only.
	if request.Normalize(r.Status) != request.StatusPending {
		return nil, domain.ErrConflict
	}
	if actorID != r.RequesterID {
		return nil, domain.ErrForbidden
	}
	if req.Quantity > 0 {
		r.Quantity = req.Quantity
	}
	if req.Remarks != "" {
		r.Remarks = strings.TrimSpace(req.Remarks)
	}
	if req.ProductID != "" && req.ProductID != r.ProductID {
		if _, err := u.products.GetByID(ctx, req.ProductID); err != nil {
			return nil, err
		}
		r.ProductID = req.ProductID
	}
	if err := u.requests.Update(ctx, r); err != nil {
		return nil, err
	}
	return u.toResponse(ctx, r, actor), nil
}

// fulfill moves the requested quantity from the fulfilling parent to the
// requester and marks the request fulfilled, atomically.
func (u *RequestUsecase) fulfill(ctx context.Context, r *entity.StockRequest, actorID, next string) error {
	return u.tx.RunFulfillment(ctx, func(ctx context.Context, tr FulfillTxRepos) error {
		if err := tr.Stocks.Adjust(ctx, actorID, r.ProductID, -int64(r.Quantity)); err != nil {
			return err
		}
		if err := tr.Stocks.Adjust(ctx, r.RequesterID, r.ProductID, int64(r.Quantity)); err != nil {
			return err
		}
		r.Status = next
		return tr.Requests.Update(ctx, r)
	})
}

// Delete removes a request. Only the requester may delete, and only while
// the request is still pending.
func (u *RequestUsecase) Delete(ctx context.Context, actorID, id string) error {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.RequesterID != actorID {
		return domain.ErrForbidden
	}
	if request.Normalize(r.Status) != request.StatusPending {
		return domain.ErrConflict
	}
	return u.requests.Delete(ctx, id)
}

// ListAssigned is the parent's queue, all statuses.
func (u *RequestUsecase) ListAssigned(ctx context.Context, actorID string, actorRoles []string) ([]dto.StockRequestResponse, error) {
	rs, err := u.requests.ListAssigned(ctx, actorID, adminSide(actorRoles))
	if err != nil {
		return nil, err
	}
	return u.toResponses(ctx, rs, request.Actor{UserID: actorID, Roles: actorRoles}), nil
}

// ListMine is the requester's view. Approved requests are absent: the
// repository filters them out because the SPA treats approval as consumed.
func (u *RequestUsecase) ListMine(ctx context.Context, actorID string, actorRoles []string) ([]dto.StockRequestResponse, error) {
	rs, err := u.requests.ListByRequester(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return u.toResponses(ctx, rs, request.Actor{UserID: actorID, Roles: actorRoles}), nil
}

// ListApproved returns approved requests waiting in the parent's queue.
func (u *RequestUsecase) ListApproved(ctx context.Context, actorID string, actorRoles []string) ([]dto.StockRequestResponse, error) {
	rs, err := u.requests.ListApprovedAssigned(ctx, actorID, adminSide(actorRoles))
	if err != nil {
		return nil, err
	}
	return u.toResponses(ctx, rs, request.Actor{UserID: actorID, Roles: actorRoles}), nil
}

// toResponses memoizes product and requester lookups so a list of n rows
// costs one fetch per distinct product and requester, not one per row.
func (u *RequestUsecase) toResponses(ctx context.Context, rs []*entity.StockRequest, actor request.Actor) []dto.StockRequestResponse {
	products := map[string]*entity.Product{}
	requesterRoles := map[string][]string{}
	out := make([]dto.StockRequestResponse, 0, len(rs))
	for _, r := range rs {
		p, seen := products[r.ProductID]
		if !seen {
			p, _ = u.products.GetByID(ctx, r.ProductID)
			products[r.ProductID] = p
		}
		roles, seen := requesterRoles[r.RequesterID]
		if !seen {
			if requester, err := u.users.GetByID(ctx, r.RequesterID); err == nil {
				roles = requester.Roles
			}
			requesterRoles[r.RequesterID] = roles
		}
		out = append(out, build(r, p, actor, roles))
	}
	return out
}

func (u *RequestUsecase) toResponse(ctx context.Context, r *entity.StockRequest, actor request.Actor) *dto.StockRequestResponse {
	p, _ := u.products.GetByID(ctx, r.ProductID)
	var roles []string
	if requester, err := u.users.GetByID(ctx, r.RequesterID); err == nil {
		roles = requester.Roles
	}
	resp := build(r, p, actor, roles)
	return &resp
}

// build attaches the actions the caller may take next, so the UI renders
// buttons from the same state machine that will judge the click.
func build(r *entity.StockRequest, p *entity.Product, actor request.Actor, requesterRoles []string) dto.StockRequestResponse {
	subject := request.Subject{
		RequesterID:    r.RequesterID,
		ParentID:       r.ParentID,
		RequesterRoles: requesterRoles,
		Status:         r.Status,
	}
	actions := request.AllowedActions(subject, actor)
	tags := make([]string, 0, len(actions))
	for _, a := range actions {
		tags = append(tags, string(a))
	}
	return dto.FromStockRequest(r, p, tags)
}
