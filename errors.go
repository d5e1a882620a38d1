package zoom

import "errors"

var (
	// ErrOutOfRange is returned for zoom indexes outside [0, MaxSupported).
	ErrOutOfRange = errors.New("zoom index out of range")
	// ErrInvalidHardwareState is returned when the component is in the invalid
	// lifecycle state. Nothing is sent to the hardware.
	ErrInvalidHardwareState = errors.New("component is in invalid state")
	// ErrApplyFailed wraps an error returned by the ConfigApplier.
	ErrApplyFailed = errors.New("digital zoom apply failed")
	// ErrStateTransitionFailed is returned when leaving the smooth zoom state
	// could not be committed.
	ErrStateTransitionFailed = errors.New("smooth zoom state transition failed")
	// ErrSubscriberNotFound is returned by Unsubscribe for an unknown id.
	ErrSubscriberNotFound = errors.New("zoom subscriber not found")
)
