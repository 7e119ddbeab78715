package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcisai/crm-backend/pkg/logger"
)

func newTestTracker(idle time.Duration) (*ActivityTracker, *time.Time) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t := NewActivityTracker(idle, logger.New(logger.Config{Env: "test", Level: "error"}))
	t.now = func() time.Time { return now }
	return t, &now
}

func TestActivityTracker_SlidingWindow(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	assert.True(t, tr.Touch("u1"), "first request opens the window")

	// Repeated activity keeps sliding the window.
	for i := 0; i < 4; i++ {
		*now = now.Add(20 * time.Minute)
		assert.True(t, tr.Touch("u1"), "activity within the window refreshes it")
	}
}

func TestActivityTracker_ExpiresAfterIdle(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	assert.True(t, tr.Touch("u1"))
	*now = now.Add(31 * time.Minute)
	assert.False(t, tr.Touch("u1"), "a request past the idle window is rejected")

	// Still rejected: expiry sticks until the user logs in again.
	*now = now.Add(time.Minute)
	assert.False(t, tr.Touch("u1"))
}

func TestActivityTracker_ResetReopensSession(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	tr.Touch("u1")
	*now = now.Add(time.Hour)
	assert.False(t, tr.Touch("u1"))

	tr.Reset("u1") // login
	assert.True(t, tr.Touch("u1"))
}

func TestActivityTracker_UsersAreIndependent(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	tr.Touch("idler")
	*now = now.Add(time.Hour)
	assert.True(t, tr.Touch("worker"), "a fresh user is unaffected by another's expiry")
	assert.False(t, tr.Touch("idler"))
}

func TestActivityTracker_SweepsAbandonedSessions(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	tr.Touch("ghost")
	*now = now.Add(sessionRetention + time.Hour)
	assert.True(t, tr.Touch("worker"))

	tr.mu.Lock()
	_, ghostKept := tr.sessions["ghost"]
	tr.mu.Unlock()
	assert.False(t, ghostKept, "entries past retention are dropped")
}

func TestActivityTracker_SweepKeepsRecentlyExpired(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	tr.Touch("u1")
	*now = now.Add(time.Hour)
	assert.False(t, tr.Touch("u1"))

	// Another user's activity triggers a sweep; u1 is within retention and
	// must stay rejected, not come back fresh.
	*now = now.Add(time.Hour)
	tr.Touch("worker")
	assert.False(t, tr.Touch("u1"), "expiry stays sticky within retention")
}

func TestActivityTracker_ExactBoundaryStillAlive(t *testing.T) {
	tr, now := newTestTracker(30 * time.Minute)

	tr.Touch("u1")
	*now = now.Add(30 * time.Minute)
	assert.True(t, tr.Touch("u1"), "exactly the idle window is not past it")
}
