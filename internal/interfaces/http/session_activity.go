package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/pkg/logger"
)

type sessionState struct {
	lastSeen time.Time
	expired  bool
}

// sessionRetention matches the login cookie lifetime. An entry whose last
// activity is older cannot be presented with a still-valid cookie, so
// sweeping it cannot reopen a live session.
const sessionRetention = 24 * time.Hour

// ActivityTracker enforces a sliding idle window per user. Each authorized
// request refreshes the window; a request after the window has passed gets
// 401 SESSION_EXPIRED until the user logs in again. The expiry is logged
// once per session, not per rejected request.
type ActivityTracker struct {
	mu        sync.Mutex
	idle      time.Duration
	retention time.Duration
	sessions  map[string]*sessionState
	lastSweep time.Time
	log       *logger.Logger
	now       func() time.Time
}

func NewActivityTracker(idle time.Duration, log *logger.Logger) *ActivityTracker {
	retention := sessionRetention
	if idle > retention {
		retention = idle
	}
	return &ActivityTracker{
		idle:      idle,
		retention: retention,
		sessions:  make(map[string]*sessionState),
		log:       log,
		now:       time.Now,
	}
}

// Touch records activity for the user. Returns false when the session has
// idled out; the caller must reject the request.
func (t *ActivityTracker) Touch(userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.sweep(now)
	s, ok := t.sessions[userID]
	if !ok {
		t.sessions[userID] = &sessionState{lastSeen: now}
		return true
	}
	if s.expired {
		return false
	}
	if now.Sub(s.lastSeen) > t.idle {
		s.expired = true
		t.log.Info().Str("user_id", userID).
			Dur("idle", now.Sub(s.lastSeen)).Msg("session expired by inactivity")
		return false
	}
	s.lastSeen = now
	return true
}

// sweep drops entries past retention so abandoned sessions do not pile up
// in a long-lived process. Runs at most once per idle window. Caller holds
// the lock.
func (t *ActivityTracker) sweep(now time.Time) {
	if now.Sub(t.lastSweep) < t.idle {
		return
	}
	t.lastSweep = now
	for id, s := range t.sessions {
		if now.Sub(s.lastSeen) > t.retention {
			delete(t.sessions, id)
		}
	}
}

// Reset clears the user's session window, on login and logout.
func (t *ActivityTracker) Reset(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, userID)
}

// Middleware rejects requests from idled-out sessions. Must run after
// AuthMiddleware.
func (t *ActivityTracker) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID != "" && !t.Touch(userID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("SESSION_EXPIRED", "session expired by inactivity, log in again"))
		}
		return c.Next()
	}
}
