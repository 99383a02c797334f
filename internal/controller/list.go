package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
)

// SessionLister is the slice of the session gateway the list view needs.
type SessionLister interface {
	All(ctx context.Context) ([]model.Session, error)
}

// SessionList owns the sessions-list view state.
type SessionList struct {
	api SessionLister
	log zerolog.Logger

	mu       sync.Mutex
	sessions []model.Session
}

// NewSessionList creates a session list controller.
func NewSessionList(api SessionLister, log zerolog.Logger) *SessionList {
	return &SessionList{api: api, log: log}
}

// Load refreshes the list from the server. A failed fetch leaves the
// previously displayed list unchanged.
func (c *SessionList) Load(ctx context.Context) error {
	sessions, err := c.api.All(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.sessions = sessions
	c.mu.Unlock()
	return nil
}

// Sessions returns the currently displayed list.
func (c *SessionList) Sessions() []model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions
}
