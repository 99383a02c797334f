// Package authstate holds the single source of truth for "is a user
// currently authenticated" on the client. Every UI region that depends
// on authentication reads from one shared *State, either synchronously
// (navigation guards) or through ObserveLoggedIn (reactive rendering).
package authstate

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
)

// State is the process-wide authentication state holder. It starts
// logged out with no principal and is mutated exclusively through
// LogIn and LogOut, which keep the flag and the principal in sync.
//
// Construct one per process (or per test) and pass it explicitly; there
// is no package-level instance.
type State struct {
	log zerolog.Logger

	mu        sync.Mutex
	loggedIn  bool
	principal *model.Principal
	nextID    int
	subs      []subscriber
}

type subscriber struct {
	id int
	fn func(bool)
}

// New returns a logged-out State.
func New(log zerolog.Logger) *State {
	return &State{log: log}
}

// LogIn unconditionally overwrites the held principal and marks the
// state logged in, then emits true to all subscribers in registration
// order. The principal is not validated here; that is the submitting
// form's responsibility.
func (s *State) LogIn(p model.Principal) {
	s.mu.Lock()
	s.principal = &p
	s.loggedIn = true
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	s.log.Debug().Int64("user_id", p.ID).Bool("admin", p.Admin).Msg("logged in")
	for _, sub := range subs {
		sub.fn(true)
	}
}

// LogOut unconditionally clears the principal and marks the state
// logged out, then emits false to all subscribers. Idempotent: calling
// it while already logged out leaves the state unchanged in content but
// still emits.
func (s *State) LogOut() {
	s.mu.Lock()
	s.principal = nil
	s.loggedIn = false
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	s.log.Debug().Msg("logged out")
	for _, sub := range subs {
		sub.fn(false)
	}
}

// ObserveLoggedIn registers fn on the logged-in broadcast stream.
// fn is invoked immediately with the current value, then once per
// LogIn/LogOut call, in call order, until cancel is invoked. The stream
// never completes on its own.
//
// Handlers run synchronously on the goroutine performing the
// transition; they must not block.
func (s *State) ObserveLoggedIn(fn func(bool)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	current := s.loggedIn
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// IsLoggedIn reports the current flag without subscribing. Used by
// imperative call sites such as navigation guards.
func (s *State) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Principal returns a copy of the current principal, if any.
func (s *State) Principal() (model.Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return model.Principal{}, false
	}
	return *s.principal, true
}

// IsAdmin reports whether the current principal carries the
// administrator flag. False when logged out.
func (s *State) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal != nil && s.principal.Admin
}

// Token returns the Authorization header value for the current
// principal ("<type> <token>"), or false when logged out. Satisfies the
// gateway package's TokenSource.
func (s *State) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return "", false
	}
	return s.principal.Type + " " + s.principal.Token, true
}
