package gateway

import (
	"context"
	"fmt"

	"github.com/savasana-dev/yogabook/internal/model"
)

// UserGateway wraps the profile endpoints.
type UserGateway struct {
	client *Client
}

// NewUserGateway creates a new UserGateway.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

// GetByID fetches a user profile.
func (g *UserGateway) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := g.client.get(ctx, "/user/"+id, &user); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Delete removes the account with the given id. The server only honors
// self-deletion; the caller must clear its own auth state on success.
func (g *UserGateway) Delete(ctx context.Context, id string) error {
	if err := g.client.delete(ctx, "/user/"+id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
