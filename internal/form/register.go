package form

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
	"github.com/savasana-dev/yogabook/internal/validation"
	"github.com/savasana-dev/yogabook/internal/view"
)

// Register is the registration form flow. Success navigates to the
// login view without touching the auth state; the user logs in
// separately.
type Register struct {
	api    AuthAPI
	router *view.Router
	log    zerolog.Logger

	mu      sync.Mutex
	fields  model.RegisterRequest
	status  Status
	onError bool
}

// NewRegister creates a registration form.
func NewRegister(api AuthAPI, router *view.Router, log zerolog.Logger) *Register {
	return &Register{api: api, router: router, log: log}
}

// Set replaces the form's field values.
func (f *Register) Set(fields model.RegisterRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Errors returns client-side validation errors, nil when valid.
func (f *Register) Errors() map[string]string {
	f.mu.Lock()
	fields := f.fields
	f.mu.Unlock()
	return validation.Check(fields)
}

// CanSubmit reports whether the submit affordance is enabled.
func (f *Register) CanSubmit() bool {
	f.mu.Lock()
	submitting := f.status == StatusSubmitting
	f.mu.Unlock()
	return !submitting && f.Errors() == nil
}

// Submit runs the gateway call.
func (f *Register) Submit(ctx context.Context) error {
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

	f.mu.Lock()
	f.status = StatusSubmitting
	f.mu.Unlock()

	if err := f.api.Register(ctx, fields); err != nil {
		f.mu.Lock()
		f.status = StatusFailed
		f.onError = true
		f.mu.Unlock()
		f.log.Warn().Err(err).Msg("registration failed")
		return err
	}

	f.mu.Lock()
	f.status = StatusSucceeded
	f.onError = false
	f.mu.Unlock()

	f.router.Navigate(ctx, view.RouteLogin)
	return nil
}

// OnError reports whether the last submission failed.
func (f *Register) OnError() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.onError
}

// Status returns the submission state.
func (f *Register) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}
