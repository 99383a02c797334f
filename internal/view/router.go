// Package view gates the client's navigable surface on the shared
// authentication state: a navigation guard that redirects unauthorized
// entry, and rendering models that show or hide affordances per
// principal.
package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
)

// View is one entry in the route table. Resolve is the view's
// data-loading hook; it only runs when the guard admits the navigation.
type View struct {
	Route     Route
	Protected bool
	Resolve   func(ctx context.Context) error
}

// Router holds the route table and the current route, and applies the
// navigation guard on every attempt. The guard is a synchronous
// point-in-time read of the auth state, evaluated once per attempt.
type Router struct {
	auth *authstate.State
	log  zerolog.Logger

	mu      sync.Mutex
	views   map[Route]View
	current Route
}

// NewRouter creates a router positioned at the home route.
func NewRouter(auth *authstate.State, log zerolog.Logger) *Router {
	return &Router{
		auth:    auth,
		log:     log,
		views:   make(map[Route]View),
		current: RouteHome,
	}
}

// Register adds or replaces a route table entry.
func (r *Router) Register(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[v.Route] = v
}

// Navigate attempts to enter the given route and returns the route
// actually reached. A protected route with no authenticated user
// redirects to the login view without running the target's Resolve
// hook. An unknown route lands on the not-found view. A Resolve error
// keeps the navigation (the view renders its own error state).
func (r *Router) Navigate(ctx context.Context, to Route) Route {
	r.mu.Lock()
	v, known := r.views[to]
	r.mu.Unlock()

	if !known {
		return r.settle(RouteNotFound)
	}
	if v.Protected && !r.auth.IsLoggedIn() {
		r.log.Debug().Str("route", string(to)).Msg("navigation blocked, redirecting to login")
		return r.settle(RouteLogin)
	}
	if v.Resolve != nil {
		if err := v.Resolve(ctx); err != nil {
			r.log.Warn().Err(err).Str("route", string(to)).Msg("view resolve failed")
		}
	}
	return r.settle(to)
}

// Current returns the route the client is presently on.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *Router) settle(to Route) Route {
	r.mu.Lock()
	r.current = to
	r.mu.Unlock()
	return to
}
