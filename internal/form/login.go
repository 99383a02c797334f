package form

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/model"
	"github.com/savasana-dev/yogabook/internal/validation"
	"github.com/savasana-dev/yogabook/internal/view"
)

// AuthAPI is the slice of the auth gateway the auth forms need.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.Principal, error)
	Register(ctx context.Context, req model.RegisterRequest) error
}

// Login is the login form flow. On success the returned principal
// becomes the new authenticated state and navigation proceeds to the
// sessions list; on failure only the form's own error flag changes.
type Login struct {
	api    AuthAPI
	auth   *authstate.State
	router *view.Router
	log    zerolog.Logger

	mu      sync.Mutex
	fields  model.LoginRequest
	status  Status
	onError bool
}

// NewLogin creates a login form bound to the shared auth state and router.
func NewLogin(api AuthAPI, auth *authstate.State, router *view.Router, log zerolog.Logger) *Login {
	return &Login{api: api, auth: auth, router: router, log: log}
}

// Set replaces the form's field values.
func (f *Login) Set(fields model.LoginRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Errors returns the client-side validation errors for the current
// fields, nil when the form is valid. The rendering layer uses this to
// disable the submit affordance.
func (f *Login) Errors() map[string]string {
	f.mu.Lock()
	fields := f.fields
	f.mu.Unlock()
	return validation.Check(fields)
}

// CanSubmit reports whether the submit affordance is enabled.
func (f *Login) CanSubmit() bool {
	f.mu.Lock()
	submitting := f.status == StatusSubmitting
	f.mu.Unlock()
	return !submitting && f.Errors() == nil
}

// Submit runs the gateway call. The Idle → Submitting transition only
// happens on a syntactically valid form.
func (f *Login) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	fields := f.fields
	f.mu.Unlock()

	if validation.Check(fields) != nil {
		return ErrInvalidForm
	}

	f.setStatus(StatusSubmitting)

	principal, err := f.api.Login(ctx, fields)
	if err != nil {
		f.mu.Lock()
		f.status = StatusFailed
		f.onError = true
		f.mu.Unlock()
		f.log.Warn().Err(err).Msg("login failed")
		return err
	}

	f.auth.LogIn(*principal)
	f.mu.Lock()
	f.status = StatusSucceeded
	f.onError = false
	f.mu.Unlock()

	f.router.Navigate(ctx, view.RouteSessions)
	return nil
}

// OnError reports whether the last submission failed; the view renders
// it as a visible inline error while the form stays editable.
func (f *Login) OnError() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.onError
}

// Status returns the submission state.
func (f *Login) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Login) setStatus(s Status) {
	f.mu.Lock()
	f.status = s
	f.mu.Unlock()
}
