package zoom

import (
	"errors"
	"fmt"
)

// TransitionOutcome is how an attempt to leave smooth zoom ended.
type TransitionOutcome int

const (
	// TransitionCommitted means the adapter left the smooth zoom state.
	TransitionCommitted TransitionOutcome = iota
	// TransitionRolledBack means the request or the commit failed and the
	// staged state was discarded.
	TransitionRolledBack
	// TransitionFailed means the rollback failed as well.
	TransitionFailed
)

func (o TransitionOutcome) String() string {
	switch o {
	case TransitionCommitted:
		return "committed"
	case TransitionRolledBack:
		return "rolled back"
	case TransitionFailed:
		return "failed"
	default:
		return fmt.Sprintf("TransitionOutcome(%d)", int(o))
	}
}

// TransitionResult records each phase of a stop smooth zoom transition.
type TransitionResult struct {
	Outcome     TransitionOutcome
	RequestErr  error
	CommitErr   error
	RollbackErr error
}

// Err returns nil for a committed transition. Otherwise it wraps
// ErrStateTransitionFailed followed by the phase errors, transition error
// first.
func (r TransitionResult) Err() error {
	if r.Outcome == TransitionCommitted {
		return nil
	}
	return errors.Join(ErrStateTransitionFailed, r.RequestErr, r.CommitErr, r.RollbackErr)
}

// stopSmoothZoom moves the adapter out of the smooth zoom state.
func stopSmoothZoom(state AdapterState) TransitionResult {
	var r TransitionResult
	if r.RequestErr = state.RequestStopSmoothZoom(); r.RequestErr == nil {
		if r.CommitErr = state.CommitState(); r.CommitErr == nil {
			return r
		}
	}
	if r.RollbackErr = state.RollbackState(); r.RollbackErr != nil {
		r.Outcome = TransitionFailed
	} else {
		r.Outcome = TransitionRolledBack
	}
	return r
}
