package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/entity"
	"github.com/arcisai/crm-backend/internal/domain/request"
)

var (
	parent    = request.Actor{UserID: "stockist-1", Roles: []string{entity.RoleStockist}}
	requester = request.Actor{UserID: "distributor-1", Roles: []string{entity.RoleDistributor}}
	stranger  = request.Actor{UserID: "distributor-2", Roles: []string{entity.RoleDistributor}}
)

func subject(status string) request.Subject {
	return request.Subject{
		RequesterID:    requester.UserID,
		ParentID:       parent.UserID,
		RequesterRoles: requester.Roles,
		Status:         status,
	}
}

func TestApply_ParentApprovesPending(t *testing.T) {
	next, err := request.Apply(subject(request.StatusPending), parent, request.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, next)
}

func TestApply_RequesterCannotApprove(t *testing.T) {
	_, err := request.Apply(subject(request.StatusPending), requester, request.ActionApprove)
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)
}

func TestApply_TerminalStatusRejectsEverything(t *testing.T) {
	for _, status := range []string{request.StatusFulfilled, request.StatusCancelled} {
		for _, action := range []request.Action{
			request.ActionApprove, request.ActionReject, request.ActionCancel,
			request.ActionRerequest, request.ActionFulfill,
		} {
			_, err := request.Apply(subject(status), parent, action)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition,
				"status=%s action=%s", status, action)
		}
	}
}

func TestApply_RerequestOnlyByRequesterFromRejected(t *testing.T) {
	next, err := request.Apply(subject(request.StatusRejected), requester, request.ActionRerequest)
	require.NoError(t, err)
	assert.Equal(t, request.StatusRequested, next)

	for _, other := range []request.Actor{parent, stranger} {
		_, err := request.Apply(subject(request.StatusRejected), other, request.ActionRerequest)
		assert.ErrorIs(t, err, domain.ErrActorNotAllowed, "actor=%s", other.UserID)
	}
}

// requested is an alias of pending: the full pending rule set applies.
func TestApply_RequestedAliasOfPending(t *testing.T) {
	next, err := request.Apply(subject(request.StatusRequested), parent, request.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, next)

	next, err = request.Apply(subject(request.StatusRequested), requester, request.ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCancelled, next)
}

func TestApply_CancelOnlyByRequesterWhilePending(t *testing.T) {
	_, err := request.Apply(subject(request.StatusPending), parent, request.ActionCancel)
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)

	_, err = request.Apply(subject(request.StatusApproved), requester, request.ActionCancel)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApply_FulfillOnlyFromApproved(t *testing.T) {
	next, err := request.Apply(subject(request.StatusApproved), parent, request.ActionFulfill)
	require.NoError(t, err)
	assert.Equal(t, request.StatusFulfilled, next)

	_, err = request.Apply(subject(request.StatusPending), parent, request.ActionFulfill)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = request.Apply(subject(request.StatusApproved), requester, request.ActionFulfill)
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)
}

// A stockist's request has an admin-side parent: any admin/sales/marketing
// user may act on it even without matching ParentID.
func TestApply_AdminActsOnStockistRequest(t *testing.T) {
	s := request.Subject{
		RequesterID:    "stockist-9",
		ParentID:       "admin-1",
		RequesterRoles: []string{entity.RoleStockist},
		Status:         request.StatusPending,
	}
	sales := request.Actor{UserID: "sales-7", Roles: []string{entity.RoleSales}}
	next, err := request.Apply(s, sales, request.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, next)

	// But an admin is not the parent of a distributor's request.
	admin := request.Actor{UserID: "admin-1", Roles: []string{entity.RoleAdmin}}
	_, err = request.Apply(subject(request.StatusPending), admin, request.ActionApprove)
	assert.ErrorIs(t, err, domain.ErrActorNotAllowed)
}

func TestAllowedActions(t *testing.T) {
	tests := []struct {
		name   string
		status string
		actor  request.Actor
		want   []request.Action
	}{
		{"parent on pending", request.StatusPending, parent,
			[]request.Action{request.ActionApprove, request.ActionReject}},
		{"requester on pending", request.StatusPending, requester,
			[]request.Action{request.ActionCancel}},
		{"parent on approved", request.StatusApproved, parent,
			[]request.Action{request.ActionFulfill}},
		{"requester on approved", request.StatusApproved, requester, nil},
		{"requester on rejected", request.StatusRejected, requester,
			[]request.Action{request.ActionRerequest}},
		{"parent on rejected", request.StatusRejected, parent, nil},
		{"stranger on pending", request.StatusPending, stranger, nil},
		{"parent on fulfilled", request.StatusFulfilled, parent, nil},
		{"requester on cancelled", request.StatusCancelled, requester, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, request.AllowedActions(subject(tt.status), tt.actor))
		})
	}
}

func TestStatusToAction(t *testing.T) {
	for target, want := range map[string]request.Action{
		request.StatusApproved:  request.ActionApprove,
		request.StatusRejected:  request.ActionReject,
		request.StatusCancelled: request.ActionCancel,
		request.StatusRequested: request.ActionRerequest,
		request.StatusFulfilled: request.ActionFulfill,
	} {
		got, ok := request.StatusToAction(target)
		require.True(t, ok, "target %s", target)
		assert.Equal(t, want, got)
	}
	_, ok := request.StatusToAction("pending")
	assert.False(t, ok, "pending is the initial status, not a transition target")
	_, ok = request.StatusToAction("shipped")
	assert.False(t, ok)
}

// Full round trip: pending -> approved -> fulfilled.
func TestLifecycle_RoundTrip(t *testing.T) {
	s := subject(request.StatusPending)

	next, err := request.Apply(s, parent, request.ActionApprove)
	require.NoError(t, err)
	s.Status = next

	next, err = request.Apply(s, parent, request.ActionFulfill)
	require.NoError(t, err)
	s.Status = next

	assert.True(t, request.IsTerminal(s.Status))
	assert.Nil(t, request.AllowedActions(s, parent))
	assert.Nil(t, request.AllowedActions(s, requester))
}
