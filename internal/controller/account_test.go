package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/authstate"
	"github.com/savasana-dev/yogabook/internal/model"
)

type fakeUserAPI struct {
	user      *model.User
	getErr    error
	deleteErr error
	deleted   []string
}

func (f *fakeUserAPI) GetByID(ctx context.Context, id string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}

func (f *fakeUserAPI) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func TestAccountLoad_RequiresLogin(t *testing.T) {
	api := &fakeUserAPI{}
	ctrl := NewAccount(api, authstate.New(zerolog.Nop()), zerolog.Nop())

	if _, err := ctrl.Load(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestAccountLoad_FetchesOwnProfile(t *testing.T) {
	api := &fakeUserAPI{user: &model.User{ID: 2, Email: "user@test.com"}}
	ctrl := NewAccount(api, loggedInState(2, false), zerolog.Nop())

	user, err := ctrl.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if user.Email != "user@test.com" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestDeleteSelf_LogsOutOnSuccess(t *testing.T) {
	api := &fakeUserAPI{}
	auth := loggedInState(2, false)
	ctrl := NewAccount(api, auth, zerolog.Nop())

	if err := ctrl.DeleteSelf(context.Background()); err != nil {
		t.Fatalf("DeleteSelf failed: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != "2" {
		t.Errorf("unexpected delete calls: %v", api.deleted)
	}
	if auth.IsLoggedIn() {
		t.Error("auth state must be logged out after self-deletion")
	}
}

func TestDeleteSelf_KeepsAuthStateOnFailure(t *testing.T) {
	api := &fakeUserAPI{deleteErr: errors.New("boom")}
	auth := loggedInState(2, false)
	ctrl := NewAccount(api, auth, zerolog.Nop())

	if err := ctrl.DeleteSelf(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !auth.IsLoggedIn() {
		t.Error("failed deletion must not clear the auth state")
	}
}
