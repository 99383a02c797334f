package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
)

// Link is a navigation affordance rendered in the top bar.
type Link struct {
	Label string
	To    Route
}

// Nav renders the navigation links for the current authentication
// state. It subscribes to the logged-in broadcast, so a late-mounted
// nav bar immediately renders the correct link set and every transition
// re-renders it without polling.
type Nav struct {
	auth   *authstate.State
	router *Router
	log    zerolog.Logger

	mu       sync.Mutex
	loggedIn bool
	cancel   func()
}

// NewNav creates a nav model and subscribes it to the auth stream.
// Close releases the subscription.
func NewNav(auth *authstate.State, router *Router, log zerolog.Logger) *Nav {
	n := &Nav{auth: auth, router: router, log: log}
	n.cancel = auth.ObserveLoggedIn(func(loggedIn bool) {
		n.mu.Lock()
		n.loggedIn = loggedIn
		n.mu.Unlock()
	})
	return n
}

// Links returns the affordances visible for the current state: login
// and register while logged out, the member links otherwise.
func (n *Nav) Links() []Link {
	n.mu.Lock()
	loggedIn := n.loggedIn
	n.mu.Unlock()

	if !loggedIn {
		return []Link{
			{Label: "Login", To: RouteLogin},
			{Label: "Register", To: RouteRegister},
		}
	}
	return []Link{
		{Label: "Sessions", To: RouteSessions},
		{Label: "Account", To: RouteMe},
		{Label: "Logout", To: RouteHome},
	}
}

// Logout clears the auth state and navigates to the home view.
func (n *Nav) Logout(ctx context.Context) {
	n.auth.LogOut()
	n.router.Navigate(ctx, RouteHome)
}

// Close unsubscribes the nav from the auth stream.
func (n *Nav) Close() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

// SessionActions reports which session affordances render for the
// current principal. Create, edit and delete are administrator-only;
// the server re-enforces this regardless of what the client renders.
type SessionActions struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

// ActionsFor reads the administrator flag synchronously at render time.
func ActionsFor(auth *authstate.State) SessionActions {
	admin := auth.IsAdmin()
	return SessionActions{CanCreate: admin, CanEdit: admin, CanDelete: admin}
}

// CanDeleteAccount reports whether the "delete my account" affordance
// renders: present for regular members, hidden for administrators.
func CanDeleteAccount(auth *authstate.State) bool {
	principal, ok := auth.Principal()
	return ok && !principal.Admin
}
