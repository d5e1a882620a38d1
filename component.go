package zoom

import (
	"fmt"

	"github.com/kevmo314/go-zoom/pkg/steps"
)

// ConfigApplier programs a digital zoom scale factor on the camera component.
// Calls are synchronous and made with the controller lock held.
type ConfigApplier interface {
	ApplyZoomScale(width, height steps.Fixed) error
}

// AdapterState is the view of the surrounding camera adapter's state machine.
// Leaving smooth zoom is two phase: RequestStopSmoothZoom stages the
// transition, which is then either committed or rolled back.
type AdapterState interface {
	IsSmoothZoomActive() bool
	RequestStopSmoothZoom() error
	CommitState() error
	RollbackState() error
}

// ComponentState mirrors OMX_STATETYPE.
type ComponentState int

const (
	ComponentStateInvalid ComponentState = iota
	ComponentStateLoaded
	ComponentStateIdle
	ComponentStateExecuting
	ComponentStatePause
	ComponentStateWaitForResources
)

func (s ComponentState) String() string {
	switch s {
	case ComponentStateInvalid:
		return "Invalid"
	case ComponentStateLoaded:
		return "Loaded"
	case ComponentStateIdle:
		return "Idle"
	case ComponentStateExecuting:
		return "Executing"
	case ComponentStatePause:
		return "Pause"
	case ComponentStateWaitForResources:
		return "WaitForResources"
	default:
		return fmt.Sprintf("ComponentState(%d)", int(s))
	}
}
