// Package form implements the submission flows for the login, register
// and session-edit forms. Each form instance is a small state machine:
//
//	Idle → Submitting → {Succeeded, Failed}
//
// Submit is only reachable on a valid form (the rendering layer
// disables the submit affordance otherwise), a failure sets a local
// error flag and leaves everything outside the form untouched, and a
// later successful re-submission clears the flag.
package form

import "errors"

// Status is the submission state of a form instance.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrInvalidForm is returned by Submit when the form's fields fail
// client-side validation. The submission state machine does not enter
// Submitting in that case.
var ErrInvalidForm = errors.New("form is not valid")

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still pending.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Notifier shows a transient confirmation notice to the user
// (the snack-bar of the rendering layer).
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards notices. Used where no rendering layer exists.
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}
