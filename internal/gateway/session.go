package gateway

import (
	"context"
	"fmt"

	"github.com/savasana-dev/yogabook/internal/model"
)

// SessionGateway wraps the session CRUD and participation endpoints.
type SessionGateway struct {
	client *Client
}

// NewSessionGateway creates a new SessionGateway.
func NewSessionGateway(client *Client) *SessionGateway {
	return &SessionGateway{client: client}
}

// All fetches every session.
func (g *SessionGateway) All(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := g.client.get(ctx, "/session", &sessions); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Detail fetches one session by id.
func (g *SessionGateway) Detail(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := g.client.get(ctx, "/session/"+id, &session); err != nil {
		return nil, fmt.Errorf("session detail: %w", err)
	}
	return &session, nil
}

// Create creates a session and returns the server's record.
func (g *SessionGateway) Create(ctx context.Context, req model.SessionRequest) (*model.Session, error) {
	var session model.Session
	if err := g.client.post(ctx, "/session", req, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

// Update replaces a session's fields and returns the server's record.
func (g *SessionGateway) Update(ctx context.Context, id string, req model.SessionRequest) (*model.Session, error) {
	var session model.Session
	if err := g.client.put(ctx, "/session/"+id, req, &session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return &session, nil
}

// Delete removes a session.
func (g *SessionGateway) Delete(ctx context.Context, id string) error {
	if err := g.client.delete(ctx, "/session/"+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Participate enrolls a user as an attendee of a session. The server
// confirms with no body; callers refetch the detail for the confirmed
// participant set.
func (g *SessionGateway) Participate(ctx context.Context, sessionID, userID string) error {
	if err := g.client.post(ctx, "/session/"+sessionID+"/participate/"+userID, nil, nil); err != nil {
		return fmt.Errorf("participate: %w", err)
	}
	return nil
}

// UnParticipate removes a user from a session's attendees.
func (g *SessionGateway) UnParticipate(ctx context.Context, sessionID, userID string) error {
	if err := g.client.delete(ctx, "/session/"+sessionID+"/participate/"+userID); err != nil {
		return fmt.Errorf("unparticipate: %w", err)
	}
	return nil
}
