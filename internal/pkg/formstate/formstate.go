// Package formstate is the reducer behind every editable view:
// idle → submitting → succeeded | failed, with failed → submitting on retry.
package formstate

import (
	"errors"
	"fmt"
)

// Phase of a form or row editor.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// Event drives a transition.
type Event string

const (
	EventSubmit  Event = "submit"
	EventSucceed Event = "succeed"
	EventFail    Event = "fail"
	EventReset   Event = "reset"
)

// ErrInvalidTransition is returned when an event is not allowed in the current phase.
var ErrInvalidTransition = errors.New("invalid form state transition")

// State is an immutable snapshot; transitions return a new value.
type State struct {
	Phase   Phase  `json:"phase"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Idle is the zero-work state.
func Idle() State {
	return State{Phase: PhaseIdle}
}

// Apply returns the state after ev. detail is the success message for
// EventSucceed and the error text for EventFail.
func (s State) Apply(ev Event, detail string) (State, error) {
	phase := s.Phase
	if phase == "" {
		phase = PhaseIdle
	}

	switch ev {
	case EventReset:
		return Idle(), nil
	case EventSubmit:
		if phase == PhaseSubmitting {
			break
		}
		return State{Phase: PhaseSubmitting}, nil
	case EventSucceed:
		if phase != PhaseSubmitting {
			break
		}
		return State{Phase: PhaseSucceeded, Message: detail}, nil
	case EventFail:
		if phase != PhaseSubmitting {
			break
		}
		return State{Phase: PhaseFailed, Error: detail}, nil
	}

	return s, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, ev, phase)
}

// Submit is Apply(EventSubmit, "").
func (s State) Submit() (State, error) {
	return s.Apply(EventSubmit, "")
}

// Succeed is Apply(EventSucceed, message).
func (s State) Succeed(message string) (State, error) {
	return s.Apply(EventSucceed, message)
}

// Fail is Apply(EventFail, err.Error()).
func (s State) Fail(err error) (State, error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return s.Apply(EventFail, msg)
}

// Busy reports whether a submission is in flight.
func (s State) Busy() bool {
	return s.Phase == PhaseSubmitting
}
