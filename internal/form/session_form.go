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

// SessionWriter is the slice of the session gateway the session form needs.
type SessionWriter interface {
	Detail(ctx context.Context, id string) (*model.Session, error)
	Create(ctx context.Context, req model.SessionRequest) (*model.Session, error)
	Update(ctx context.Context, id string, req model.SessionRequest) (*model.Session, error)
}

// SessionForm is the create/update session flow. It is an
// administrator-only view: a non-admin initializing it is bounced back
// to the sessions list before any data loads.
type SessionForm struct {
	api    SessionWriter
	auth   *authstate.State
	router *view.Router
	notify Notifier
	log    zerolog.Logger

	mu        sync.Mutex
	fields    model.SessionRequest
	status    Status
	onError   bool
	updating  bool
	sessionID string
}

// NewSessionForm creates a session form. notify may be NopNotifier.
func NewSessionForm(api SessionWriter, auth *authstate.State, router *view.Router, notify Notifier, log zerolog.Logger) *SessionForm {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &SessionForm{api: api, auth: auth, router: router, notify: notify, log: log}
}

// Init prepares the form. With an empty sessionID the form starts blank
// in create mode; otherwise the existing session's fields are loaded
// and submissions update it. Non-admins are redirected to the sessions
// list and the form never loads.
func (f *SessionForm) Init(ctx context.Context, sessionID string) error {
	if !f.auth.IsAdmin() {
		f.router.Navigate(ctx, view.RouteSessions)
		return nil
	}

	if sessionID == "" {
		f.mu.Lock()
		f.updating = false
		f.sessionID = ""
		f.fields = model.SessionRequest{}
		f.mu.Unlock()
		return nil
	}

	session, err := f.api.Detail(ctx, sessionID)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.updating = true
	f.sessionID = sessionID
	f.fields = model.SessionRequest{
		Name:        session.Name,
		Date:        session.Date.Format("2006-01-02"),
		TeacherID:   session.TeacherID,
		Description: session.Description,
	}
	f.mu.Unlock()
	return nil
}

// Set replaces the form's field values.
func (f *SessionForm) Set(fields model.SessionRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Fields returns the current field values (pre-filled in update mode).
func (f *SessionForm) Fields() model.SessionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// IsUpdate reports whether the form edits an existing session.
func (f *SessionForm) IsUpdate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updating
}

// Errors returns client-side validation errors, nil when valid.
func (f *SessionForm) Errors() map[string]string {
	f.mu.Lock()
	fields := f.fields
	f.mu.Unlock()
	return validation.Check(fields)
}

// CanSubmit reports whether the submit affordance is enabled.
func (f *SessionForm) CanSubmit() bool {
	f.mu.Lock()
	submitting := f.status == StatusSubmitting
	f.mu.Unlock()
	return !submitting && f.Errors() == nil
}

// Submit creates or updates the session. Success shows a confirmation
// notice and navigates back to the sessions list; failure sets the
// error flag and leaves the form editable.
func (f *SessionForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	fields := f.fields
	updating := f.updating
	sessionID := f.sessionID
	f.mu.Unlock()

	if validation.Check(fields) != nil {
		return ErrInvalidForm
	}

	f.mu.Lock()
	f.status = StatusSubmitting
	f.mu.Unlock()

	var err error
	if updating {
		_, err = f.api.Update(ctx, sessionID, fields)
	} else {
		_, err = f.api.Create(ctx, fields)
	}
	if err != nil {
		f.mu.Lock()
		f.status = StatusFailed
		f.onError = true
		f.mu.Unlock()
		f.log.Warn().Err(err).Bool("update", updating).Msg("session form submit failed")
		return err
	}

	f.mu.Lock()
	f.status = StatusSucceeded
	f.onError = false
	f.mu.Unlock()

	if updating {
		f.notify.Notify("Session updated !")
	} else {
		f.notify.Notify("Session created !")
	}
	f.router.Navigate(ctx, view.RouteSessions)
	return nil
}

// OnError reports whether the last submission failed.
func (f *SessionForm) OnError() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.onError
}

// Status returns the submission state.
func (f *SessionForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}
