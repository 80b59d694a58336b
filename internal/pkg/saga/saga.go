// Package saga runs a primary write followed by optional follow-up steps with
// no transaction spanning them. A follow-up failure never undoes the primary
// write; it is reported as a partial failure instead.
package saga

import (
	"context"

	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

// State is the terminal state of a saga run.
type State string

const (
	StateCompleted      State = "completed"
	StatePrimaryFailed  State = "primary_failed"
	StatePartialFailure State = "partial_failure"
)

// Step is a named unit of work. A Step with a nil Run is skipped.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result describes how far a saga got.
type Result struct {
	Subject    string
	State      State
	FailedStep string
	Err        error
}

// Run executes primary, then each follow-up in order, stopping at the first
// failure.
func Run(ctx context.Context, subject string, primary Step, followUps ...Step) Result {
	res := Result{Subject: subject, State: StateCompleted}

	if primary.Run != nil {
		if err := primary.Run(ctx); err != nil {
			res.State = StatePrimaryFailed
			res.FailedStep = primary.Name
			res.Err = err
			return res
		}
	}

	for _, step := range followUps {
		if step.Run == nil {
			continue
		}
		if err := step.Run(ctx); err != nil {
			res.State = StatePartialFailure
			res.FailedStep = step.Name
			res.Err = err
			return res
		}
	}

	return res
}

// Error converts the result into the error callers return: nil when
// completed, the primary error unchanged, or a PartialSuccessError.
func (r Result) Error() error {
	switch r.State {
	case StatePrimaryFailed:
		return r.Err
	case StatePartialFailure:
		return &apperrors.PartialSuccessError{
			Primary: r.Subject,
			Step:    r.FailedStep,
			Err:     r.Err,
		}
	default:
		return nil
	}
}

// Persisted reports whether the primary write went through.
func (r Result) Persisted() bool {
	return r.State != StatePrimaryFailed
}
