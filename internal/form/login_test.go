package form

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/model"
	"github.com/savasana-dev/yogabook/internal/view"
)

type fakeAuthAPI struct {
	principal   *model.Principal
	loginErr    error
	registerErr error
	loginCalls  []model.LoginRequest
	registered  []model.RegisterRequest
}

func (f *fakeAuthAPI) Login(ctx context.Context, req model.LoginRequest) (*model.Principal, error) {
	f.loginCalls = append(f.loginCalls, req)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.principal, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, req model.RegisterRequest) error {
	f.registered = append(f.registered, req)
	return f.registerErr
}

func newHarness(api *fakeAuthAPI) (*authstate.State, *view.Router) {
	auth := authstate.New(zerolog.Nop())
	router := view.NewRouter(auth, zerolog.Nop())
	router.Register(view.View{Route: view.RouteLogin})
	router.Register(view.View{Route: view.RouteSessions, Protected: true})
	return auth, router
}

func TestLogin_SuccessSetsAuthStateAndNavigates(t *testing.T) {
	principal := model.Principal{
		ID: 1, Token: "t", Type: "Bearer",
		Username: "u", FirstName: "Emma", LastName: "Lee", Admin: false,
	}
	api := &fakeAuthAPI{principal: &principal}
	auth, router := newHarness(api)
	f := NewLogin(api, auth, router, zerolog.Nop())

	req := model.LoginRequest{Email: "email@test.com", Password: "pass!1234"}
	f.Set(req)
	if !f.CanSubmit() {
		t.Fatalf("form should be submittable, errors: %v", f.Errors())
	}

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(api.loginCalls) != 1 || api.loginCalls[0] != req {
		t.Errorf("gateway called with %v, want %v", api.loginCalls, req)
	}
	if !auth.IsLoggedIn() {
		t.Error("expected logged in after successful submit")
	}
	if got, _ := auth.Principal(); got != principal {
		t.Errorf("principal mismatch: got %+v, want %+v", got, principal)
	}
	if router.Current() != view.RouteSessions {
		t.Errorf("expected navigation to sessions, got %s", router.Current())
	}
	if f.Status() != StatusSucceeded || f.OnError() {
		t.Errorf("expected succeeded without error, got %s onError=%v", f.Status(), f.OnError())
	}
}

func TestLogin_FailureSetsErrorFlagOnly(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("bad credentials")}
	auth, router := newHarness(api)
	f := NewLogin(api, auth, router, zerolog.Nop())

	f.Set(model.LoginRequest{Email: "email@test.com", Password: "wrong"})
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if !f.OnError() {
		t.Error("expected the error flag set")
	}
	if f.Status() != StatusFailed {
		t.Errorf("expected failed status, got %s", f.Status())
	}
	if auth.IsLoggedIn() {
		t.Error("a failed login must leave the auth state logged out")
	}
	if router.Current() == view.RouteSessions {
		t.Error("a failed login must not navigate")
	}
}

func TestLogin_InvalidFormNeverSubmits(t *testing.T) {
	api := &fakeAuthAPI{}
	auth, router := newHarness(api)
	f := NewLogin(api, auth, router, zerolog.Nop())

	f.Set(model.LoginRequest{Email: "not-an-email", Password: ""})
	if f.CanSubmit() {
		t.Error("invalid form must disable submit")
	}

	if err := f.Submit(context.Background()); !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm, got %v", err)
	}
	if len(api.loginCalls) != 0 {
		t.Error("gateway must not be called for an invalid form")
	}
	if f.Status() != StatusIdle {
		t.Errorf("state machine must stay idle, got %s", f.Status())
	}
}

func TestLogin_ResubmitAfterFailureClearsError(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("server error")}
	auth, router := newHarness(api)
	f := NewLogin(api, auth, router, zerolog.Nop())

	f.Set(model.LoginRequest{Email: "email@test.com", Password: "pass!1234"})
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected first submit to fail")
	}
	if !f.OnError() {
		t.Fatal("expected error flag after failure")
	}

	api.loginErr = nil
	api.principal = &model.Principal{ID: 1, Token: "t", Type: "Bearer"}
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("re-submit failed: %v", err)
	}
	if f.OnError() {
		t.Error("a later success must clear the error flag")
	}
	if !auth.IsLoggedIn() {
		t.Error("expected logged in after successful re-submit")
	}
}
