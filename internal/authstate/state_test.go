package authstate

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/savasana-dev/yogabook/internal/model"
)

func testPrincipal() model.Principal {
	return model.Principal{
		ID:        1,
		Token:     "mockToken",
		Type:      "mockType",
		Username:  "mockUsername",
		FirstName: "mockFirstName",
		LastName:  "mockLastName",
		Admin:     true,
	}
}

func newTestState() *State {
	return New(zerolog.Nop())
}

func TestLogIn_SetsPrincipalAndFlag(t *testing.T) {
	st := newTestState()
	p := testPrincipal()

	st.LogIn(p)

	if !st.IsLoggedIn() {
		t.Fatal("expected IsLoggedIn to be true after LogIn")
	}
	got, ok := st.Principal()
	if !ok {
		t.Fatal("expected a principal after LogIn")
	}
	if got != p {
		t.Errorf("principal mismatch: got %+v, want %+v", got, p)
	}
}

func TestLogOut_ClearsPrincipalAndFlag(t *testing.T) {
	st := newTestState()
	st.LogIn(testPrincipal())

	st.LogOut()

	if st.IsLoggedIn() {
		t.Fatal("expected IsLoggedIn to be false after LogOut")
	}
	if _, ok := st.Principal(); ok {
		t.Fatal("expected principal to be absent after LogOut")
	}
}

func TestObserveLoggedIn_EmitsSequenceInCallOrder(t *testing.T) {
	st := newTestState()

	var got []bool
	cancel := st.ObserveLoggedIn(func(v bool) { got = append(got, v) })
	defer cancel()

	if len(got) != 1 || got[0] != false {
		t.Fatalf("expected initial replay [false], got %v", got)
	}

	st.LogIn(testPrincipal())
	if len(got) != 2 || got[1] != true {
		t.Fatalf("expected [false true], got %v", got)
	}

	st.LogOut()
	want := []bool{false, true, false}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestObserveLoggedIn_ReplaysLatestToLateSubscriber(t *testing.T) {
	st := newTestState()
	st.LogIn(testPrincipal())
	st.LogOut()
	st.LogIn(testPrincipal())

	var got []bool
	cancel := st.ObserveLoggedIn(func(v bool) { got = append(got, v) })
	defer cancel()

	if len(got) != 1 || got[0] != true {
		t.Fatalf("late subscriber should replay the current value, got %v", got)
	}
}

func TestObserveLoggedIn_BroadcastsToAllSubscribers(t *testing.T) {
	st := newTestState()

	var first, second []bool
	cancelFirst := st.ObserveLoggedIn(func(v bool) { first = append(first, v) })
	defer cancelFirst()

	st.LogIn(testPrincipal())

	cancelSecond := st.ObserveLoggedIn(func(v bool) { second = append(second, v) })
	defer cancelSecond()

	st.LogOut()
	st.LogIn(testPrincipal())

	wantFirst := []bool{false, true, false, true}
	wantSecond := []bool{true, false, true}
	assertSequence(t, "first subscriber", first, wantFirst)
	assertSequence(t, "second subscriber", second, wantSecond)
}

func TestObserveLoggedIn_CancelStopsEmissions(t *testing.T) {
	st := newTestState()

	var got []bool
	cancel := st.ObserveLoggedIn(func(v bool) { got = append(got, v) })

	st.LogIn(testPrincipal())
	cancel()
	st.LogOut()
	st.LogIn(testPrincipal())

	assertSequence(t, "cancelled subscriber", got, []bool{false, true})

	// Cancelling twice is a no-op.
	cancel()
}

func TestLogOut_Idempotent(t *testing.T) {
	st := newTestState()

	var got []bool
	cancel := st.ObserveLoggedIn(func(v bool) { got = append(got, v) })
	defer cancel()

	st.LogOut()
	st.LogOut()

	if st.IsLoggedIn() {
		t.Fatal("expected logged out")
	}
	if _, ok := st.Principal(); ok {
		t.Fatal("expected no principal")
	}
	// Initial replay plus one emission per LogOut call.
	assertSequence(t, "idempotent logout", got, []bool{false, false, false})
}

func TestToken_FormatsAuthorizationValue(t *testing.T) {
	st := newTestState()

	if _, ok := st.Token(); ok {
		t.Fatal("expected no token while logged out")
	}

	st.LogIn(model.Principal{ID: 1, Token: "t", Type: "Bearer"})
	tok, ok := st.Token()
	if !ok {
		t.Fatal("expected a token after LogIn")
	}
	if tok != "Bearer t" {
		t.Errorf("expected %q, got %q", "Bearer t", tok)
	}
}

func TestIsAdmin(t *testing.T) {
	st := newTestState()
	if st.IsAdmin() {
		t.Fatal("logged out state must not be admin")
	}

	p := testPrincipal()
	p.Admin = false
	st.LogIn(p)
	if st.IsAdmin() {
		t.Fatal("non-admin principal reported as admin")
	}

	p.Admin = true
	st.LogIn(p)
	if !st.IsAdmin() {
		t.Fatal("admin principal not reported as admin")
	}
}

func assertSequence(t *testing.T, name string, got, want []bool) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
	}
}
