package view

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
)

func linkLabels(links []Link) []string {
	labels := make([]string, len(links))
	for i, l := range links {
		labels[i] = l.Label
	}
	return labels
}

func containsLabel(links []Link, label string) bool {
	for _, l := range links {
		if l.Label == label {
			return true
		}
	}
	return false
}

func TestNav_LoggedOutLinks(t *testing.T) {
	auth := newAuth(false, false)
	nav := NewNav(auth, NewRouter(auth, zerolog.Nop()), zerolog.Nop())
	defer nav.Close()

	links := nav.Links()
	if !containsLabel(links, "Login") || !containsLabel(links, "Register") {
		t.Errorf("expected login/register affordances, got %v", linkLabels(links))
	}
	if containsLabel(links, "Logout") {
		t.Error("logout must not render for a logged-out user")
	}
}

func TestNav_ReRendersOnEveryTransition(t *testing.T) {
	auth := newAuth(false, false)
	nav := NewNav(auth, NewRouter(auth, zerolog.Nop()), zerolog.Nop())
	defer nav.Close()

	auth.LogIn(model.Principal{ID: 1, Token: "t", Type: "Bearer"})
	if !containsLabel(nav.Links(), "Logout") {
		t.Error("expected logout affordance after login")
	}

	auth.LogOut()
	if containsLabel(nav.Links(), "Logout") {
		t.Error("logout affordance must disappear after logout")
	}
}

func TestNav_LateMountSeesCurrentState(t *testing.T) {
	auth := newAuth(true, false)

	// Nav created after the login transition still renders member links
	// thanks to the replay-latest subscription.
	nav := NewNav(auth, NewRouter(auth, zerolog.Nop()), zerolog.Nop())
	defer nav.Close()

	if !containsLabel(nav.Links(), "Sessions") {
		t.Errorf("late-mounted nav should render member links, got %v", linkLabels(nav.Links()))
	}
}

func TestNav_Logout(t *testing.T) {
	auth := newAuth(true, false)
	router := NewRouter(auth, zerolog.Nop())
	nav := NewNav(auth, router, zerolog.Nop())
	defer nav.Close()

	nav.Logout(context.Background())

	if auth.IsLoggedIn() {
		t.Error("expected logged out")
	}
	if router.Current() != RouteHome {
		t.Errorf("expected home after logout, got %s", router.Current())
	}
}

func TestActionsFor_AdminGating(t *testing.T) {
	member := newAuth(true, false)
	actions := ActionsFor(member)
	if actions.CanCreate || actions.CanEdit || actions.CanDelete {
		t.Errorf("member must not see admin controls: %+v", actions)
	}

	admin := newAuth(true, true)
	actions = ActionsFor(admin)
	if !actions.CanCreate || !actions.CanEdit || !actions.CanDelete {
		t.Errorf("admin should see all session controls: %+v", actions)
	}

	loggedOut := newAuth(false, false)
	actions = ActionsFor(loggedOut)
	if actions.CanCreate || actions.CanEdit || actions.CanDelete {
		t.Errorf("logged-out state must not see admin controls: %+v", actions)
	}
}

func TestCanDeleteAccount_InvertedForAdmins(t *testing.T) {
	if !CanDeleteAccount(newAuth(true, false)) {
		t.Error("member should see the delete-my-account affordance")
	}
	if CanDeleteAccount(newAuth(true, true)) {
		t.Error("admin must not see the delete-my-account affordance")
	}
	if CanDeleteAccount(newAuth(false, false)) {
		t.Error("logged-out state must not see the delete-my-account affordance")
	}
}
