// Package request is the stock-request state machine: which status
// transitions exist and which actor may invoke them. Both the HTTP layer
// and any future caller go through Apply, so an invalid transition is
// rejected uniformly instead of merely hidden from the current UI.
package request

import (
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
)

// Request statuses. "requested" is the status a rejected request returns to
// and behaves identically to "pending".
const (
	StatusPending   = "pending"
	StatusRequested = "requested"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusFulfilled = "fulfilled" // terminal
	StatusCancelled = "cancelled" // terminal
)

// Action is a lifecycle operation on a request.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionCancel    Action = "cancel"
	ActionRerequest Action = "rerequest"
	ActionFulfill   Action = "mark-fulfilled"
)

// Actor is the user attempting a transition.
type Actor struct {
	UserID string
	Roles  []string
}

// Subject is the slice of a stock request the state machine needs, plus the
// requester's roles (to resolve the top-of-hierarchy parent rule).
type Subject struct {
	RequesterID    string
	ParentID       string
	RequesterRoles []string
	Status         string
}

// Normalize folds the requested alias into pending.
func Normalize(status string) string {
	if status == StatusRequested {
		return StatusPending
	}
	return status
}

// IsTerminal reports whether no action can ever apply to the status.
func IsTerminal(status string) bool {
	s := Normalize(status)
	return s == StatusFulfilled || s == StatusCancelled
}

// StatusToAction maps a requested target status to the action that reaches
// it, so callers that speak in statuses (the update endpoint) still go
// through the checked transition. Unknown targets return false.
func StatusToAction(target string) (Action, bool) {
	switch target {
	case StatusApproved:
		return ActionApprove, true
	case StatusRejected:
		return ActionReject, true
	case StatusCancelled:
		return ActionCancel, true
	case StatusRequested:
		return ActionRerequest, true
	case StatusFulfilled:
		return ActionFulfill, true
	default:
		return "", false
	}
}

// isParent reports whether the actor sits one level above the requester:
// either the recorded parent, or — for a stockist's request — any
// admin/sales/marketing user.
func (s Subject) isParent(a Actor) bool {
	if a.UserID != "" && a.UserID == s.ParentID {
		return true
	}
	if hasRole(s.RequesterRoles, entity.RoleStockist) &&
		hasAnyRole(a.Roles, entity.RoleAdmin, entity.RoleSales, entity.RoleMarketing) {
		return true
	}
	return false
}

func (s Subject) isRequester(a Actor) bool {
	return a.UserID != "" && a.UserID == s.RequesterID
}

// AllowedActions returns the actions the actor may invoke on the subject in
// its current status. Terminal statuses yield nothing for anyone.
func AllowedActions(s Subject, a Actor) []Action {
	var out []Action
	switch Normalize(s.Status) {
	case StatusPending:
		if s.isParent(a) {
			out = append(out, ActionApprove, ActionReject)
		}
		if s.isRequester(a) {
			out = append(out, ActionCancel)
		}
	case StatusApproved:
		if s.isParent(a) {
			out = append(out, ActionFulfill)
		}
	case StatusRejected:
		if s.isRequester(a) {
			out = append(out, ActionRerequest)
		}
	}
	return out
}

// Apply validates (status, action, actor) and returns the resulting status.
// Invalid (status, action) pairs return domain.ErrInvalidTransition; a valid
// pair invoked by the wrong actor returns domain.ErrActorNotAllowed. Nothing
// is ever silently ignored.
func Apply(s Subject, a Actor, action Action) (string, error) {
	var (
		from      string
		requester bool // requester-owned action; otherwise parent-owned
		to        string
	)
	switch action {
	case ActionApprove:
		from, requester, to = StatusPending, false, StatusApproved
	case ActionReject:
		from, requester, to = StatusPending, false, StatusRejected
	case ActionCancel:
		from, requester, to = StatusPending, true, StatusCancelled
	case ActionRerequest:
		from, requester, to = StatusRejected, true, StatusRequested
	case ActionFulfill:
		from, requester, to = StatusApproved, false, StatusFulfilled
	default:
		return "", domain.ErrInvalidTransition
	}

	if Normalize(s.Status) != from {
		return "", domain.ErrInvalidTransition
	}
	if requester {
		if !s.isRequester(a) {
			return "", domain.ErrActorNotAllowed
		}
	} else if !s.isParent(a) {
		return "", domain.ErrActorNotAllowed
	}
	return to, nil
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}

func hasAnyRole(roles []string, want ...string) bool {
	for _, w := range want {
		if hasRole(roles, w) {
			return true
		}
	}
	return false
}
