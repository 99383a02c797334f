package controller

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/model"
)

// UserAPI is the slice of the user gateway the account view needs.
type UserAPI interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

// Account owns the "me" view: the authenticated user's own profile and
// self-deletion.
type Account struct {
	api  UserAPI
	auth *authstate.State
	log  zerolog.Logger
}

// NewAccount creates an account controller bound to the shared auth state.
func NewAccount(api UserAPI, auth *authstate.State, log zerolog.Logger) *Account {
	return &Account{api: api, auth: auth, log: log}
}

// Load fetches the profile of the currently authenticated principal.
func (c *Account) Load(ctx context.Context) (*model.User, error) {
	principal, ok := c.auth.Principal()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	return c.api.GetByID(ctx, strconv.FormatInt(principal.ID, 10))
}

// DeleteSelf removes the caller's own account. On success the auth
// state is logged out, since the deleted account's token is no longer
// valid for anything.
func (c *Account) DeleteSelf(ctx context.Context) error {
	principal, ok := c.auth.Principal()
	if !ok {
		return ErrNotLoggedIn
	}
	if err := c.api.Delete(ctx, strconv.FormatInt(principal.ID, 10)); err != nil {
		return err
	}
	c.log.Info().Int64("user_id", principal.ID).Msg("account deleted")
	c.auth.LogOut()
	return nil
}
