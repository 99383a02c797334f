// Package controller owns per-view entity state refreshed from the
// server on demand: a session's detail with the derived participation
// flag, the session list, and the caller's own account.
package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/model"
)

// SessionAPI is the slice of the session gateway the participation
// controller needs.
type SessionAPI interface {
	Detail(ctx context.Context, id string) (*model.Session, error)
	Participate(ctx context.Context, sessionID, userID string) error
	UnParticipate(ctx context.Context, sessionID, userID string) error
	Delete(ctx context.Context, id string) error
}

// Participation owns a single session's detail data plus the derived
// "current user participates" flag. The participant set is
// server-authoritative: after a successful participate/unparticipate
// the controller refetches the detail instead of mutating the set
// locally, so the display never diverges from what the server actually
// accepted.
type Participation struct {
	api  SessionAPI
	auth *authstate.State
	log  zerolog.Logger

	mu sync.Mutex
	// gen invalidates responses that complete after Reset; a response
	// for a torn-down view is discarded, never applied.
	gen           uint64
	session       *model.Session
	isParticipant bool
}

// NewParticipation creates a participation controller bound to the
// shared auth state.
func NewParticipation(api SessionAPI, auth *authstate.State, log zerolog.Logger) *Participation {
	return &Participation{api: api, auth: auth, log: log}
}

// LoadDetail fetches the session by id, stores it as current, and
// recomputes the participation flag from the authenticated principal.
func (c *Participation) LoadDetail(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	session, err := c.api.Detail(ctx, sessionID)
	if err != nil {
		return err
	}
	c.apply(gen, session)
	return nil
}

// Participate enrolls userID in sessionID, then refetches the detail to
// obtain the server-confirmed participant set. A failed mutation
// returns the error without issuing the refetch, leaving the displayed
// entity and flag unchanged.
func (c *Participation) Participate(ctx context.Context, sessionID, userID string) error {
	if err := c.api.Participate(ctx, sessionID, userID); err != nil {
		c.log.Warn().Err(err).Str("session_id", sessionID).Msg("participate rejected")
		return err
	}
	return c.LoadDetail(ctx, sessionID)
}

// UnParticipate removes userID from sessionID, then refetches the
// detail. Symmetric with Participate.
func (c *Participation) UnParticipate(ctx context.Context, sessionID, userID string) error {
	if err := c.api.UnParticipate(ctx, sessionID, userID); err != nil {
		c.log.Warn().Err(err).Str("session_id", sessionID).Msg("unparticipate rejected")
		return err
	}
	return c.LoadDetail(ctx, sessionID)
}

// Delete removes the session. Authorization (administrator only) is the
// caller's responsibility; the server re-enforces it regardless.
func (c *Participation) Delete(ctx context.Context, sessionID string) error {
	return c.api.Delete(ctx, sessionID)
}

// Reset detaches the controller from its current session, e.g. when the
// consuming view is torn down. In-flight responses issued before Reset
// are discarded when they arrive.
func (c *Participation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.session = nil
	c.isParticipant = false
}

// Session returns the currently displayed session, or nil before the
// first successful load.
func (c *Participation) Session() *model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// IsParticipant reports whether the current principal is in the
// displayed session's participant set.
func (c *Participation) IsParticipant() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isParticipant
}

func (c *Participation) apply(gen uint64, session *model.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		c.log.Debug().Int64("session_id", session.ID).Msg("discarding stale detail response")
		return
	}
	c.session = session
	c.isParticipant = false
	if principal, ok := c.auth.Principal(); ok {
		c.isParticipant = session.HasParticipant(principal.ID)
	}
}
