package view

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/model"
)

func newAuth(loggedIn, admin bool) *authstate.State {
	st := authstate.New(zerolog.Nop())
	if loggedIn {
		st.LogIn(model.Principal{ID: 1, Token: "t", Type: "Bearer", Admin: admin})
	}
	return st
}

func TestNavigate_ProtectedRouteRedirectsWhenLoggedOut(t *testing.T) {
	auth := newAuth(false, false)
	router := NewRouter(auth, zerolog.Nop())

	resolved := false
	router.Register(View{Route: RouteLogin})
	router.Register(View{
		Route:     RouteSessions,
		Protected: true,
		Resolve: func(ctx context.Context) error {
			resolved = true
			return nil
		},
	})

	got := router.Navigate(context.Background(), RouteSessions)

	if got != RouteLogin {
		t.Errorf("expected redirect to %s, got %s", RouteLogin, got)
	}
	if router.Current() != RouteLogin {
		t.Errorf("current route should be login, got %s", router.Current())
	}
	if resolved {
		t.Error("protected view's data loading must never run for a logged-out user")
	}
}

func TestNavigate_ProtectedRouteAllowsWhenLoggedIn(t *testing.T) {
	auth := newAuth(true, false)
	router := NewRouter(auth, zerolog.Nop())

	resolved := false
	router.Register(View{
		Route:     RouteSessions,
		Protected: true,
		Resolve: func(ctx context.Context) error {
			resolved = true
			return nil
		},
	})

	got := router.Navigate(context.Background(), RouteSessions)

	if got != RouteSessions {
		t.Errorf("expected %s, got %s", RouteSessions, got)
	}
	if !resolved {
		t.Error("expected the view's Resolve hook to run")
	}
}

func TestNavigate_GuardEvaluatesPerAttempt(t *testing.T) {
	auth := newAuth(false, false)
	router := NewRouter(auth, zerolog.Nop())
	router.Register(View{Route: RouteLogin})
	router.Register(View{Route: RouteSessions, Protected: true})

	if got := router.Navigate(context.Background(), RouteSessions); got != RouteLogin {
		t.Fatalf("expected login redirect, got %s", got)
	}

	auth.LogIn(model.Principal{ID: 1, Token: "t", Type: "Bearer"})
	if got := router.Navigate(context.Background(), RouteSessions); got != RouteSessions {
		t.Fatalf("expected sessions after login, got %s", got)
	}

	auth.LogOut()
	if got := router.Navigate(context.Background(), RouteSessions); got != RouteLogin {
		t.Fatalf("expected login redirect after logout, got %s", got)
	}
}

func TestNavigate_UnknownRoute(t *testing.T) {
	router := NewRouter(newAuth(true, false), zerolog.Nop())

	if got := router.Navigate(context.Background(), Route("/nope")); got != RouteNotFound {
		t.Errorf("expected %s, got %s", RouteNotFound, got)
	}
}

func TestNavigate_PublicRouteNeedsNoAuth(t *testing.T) {
	router := NewRouter(newAuth(false, false), zerolog.Nop())
	router.Register(View{Route: RouteRegister})

	if got := router.Navigate(context.Background(), RouteRegister); got != RouteRegister {
		t.Errorf("expected %s, got %s", RouteRegister, got)
	}
}
