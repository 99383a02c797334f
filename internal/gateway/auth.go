package gateway

import (
	"context"
	"fmt"

	"github.com/savasana-dev/yogabook/internal/model"
)

// AuthGateway wraps the authentication endpoints.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates a new AuthGateway.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login exchanges credentials for a principal. A non-2xx response
// (bad credentials) surfaces as an *APIError.
func (g *AuthGateway) Login(ctx context.Context, req model.LoginRequest) (*model.Principal, error) {
	var principal model.Principal
	if err := g.client.post(ctx, "/auth/login", req, &principal); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &principal, nil
}

// Register creates a new account. The caller must log in separately
// afterwards; registration does not return a token.
func (g *AuthGateway) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := g.client.post(ctx, "/auth/register", req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}
