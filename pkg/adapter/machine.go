// Package adapter implements the camera adapter's state machine as seen by
// the zoom controller: bit flag states changed through a two phase
// SetState / CommitState / RollbackState protocol.
package adapter

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrInvalidTransition = errors.New("invalid adapter state transition")
	ErrNoPendingState    = errors.New("no adapter state transition pending")
	ErrTransitionPending = errors.New("adapter state transition already pending")
)

type State uint32

const (
	StateInitialized   State = 0
	StatePreviewActive State = 1 << 0
	StateCaptureActive State = 1 << 1
	StateZoomActive    State = 1 << 2
	StateVideoActive   State = 1 << 3
)

func (s State) String() string {
	if s == StateInitialized {
		return "INITIALIZED"
	}
	var names []string
	for _, f := range []struct {
		bit  State
		name string
	}{
		{StatePreviewActive, "PREVIEW"},
		{StateCaptureActive, "CAPTURE"},
		{StateZoomActive, "ZOOM"},
		{StateVideoActive, "VIDEO"},
	} {
		if s&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}

type Command int

const (
	CommandStartPreview Command = iota
	CommandStopPreview
	CommandStartCapture
	CommandStopCapture
	CommandStartSmoothZoom
	CommandStopSmoothZoom
	CommandStartVideo
	CommandStopVideo
)

func (c Command) String() string {
	switch c {
	case CommandStartPreview:
		return "START_PREVIEW"
	case CommandStopPreview:
		return "STOP_PREVIEW"
	case CommandStartCapture:
		return "START_CAPTURE"
	case CommandStopCapture:
		return "STOP_CAPTURE"
	case CommandStartSmoothZoom:
		return "START_SMOOTH_ZOOM"
	case CommandStopSmoothZoom:
		return "STOP_SMOOTH_ZOOM"
	case CommandStartVideo:
		return "START_VIDEO"
	case CommandStopVideo:
		return "STOP_VIDEO"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Machine is safe for concurrent use.
type Machine struct {
	mu      sync.Mutex
	current State
	next    State
	pending bool
}

func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// transition returns the state cmd leads to from s and whether cmd is
// allowed in s.
func transition(s State, cmd Command) (State, bool) {
	switch cmd {
	case CommandStartPreview:
		return s | StatePreviewActive, s&StatePreviewActive == 0
	case CommandStopPreview:
		return StateInitialized, s&StatePreviewActive != 0 && s&(StateZoomActive|StateCaptureActive|StateVideoActive) == 0
	case CommandStartCapture:
		return s | StateCaptureActive, s&StatePreviewActive != 0 && s&(StateCaptureActive|StateZoomActive) == 0
	case CommandStopCapture:
		return s &^ StateCaptureActive, s&StateCaptureActive != 0
	case CommandStartSmoothZoom:
		return s | StateZoomActive, s&StatePreviewActive != 0 && s&(StateZoomActive|StateCaptureActive) == 0
	case CommandStopSmoothZoom:
		return s &^ StateZoomActive, s&StateZoomActive != 0
	case CommandStartVideo:
		return s | StateVideoActive, s&StatePreviewActive != 0 && s&StateVideoActive == 0
	case CommandStopVideo:
		return s &^ StateVideoActive, s&StateVideoActive != 0
	}
	return s, false
}

// SetState stages the transition for cmd. It must be followed by CommitState
// or RollbackState.
func (m *Machine) SetState(cmd Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending {
		return fmt.Errorf("%w: %s", ErrTransitionPending, cmd)
	}
	next, ok := transition(m.current, cmd)
	if !ok {
		return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, cmd, m.current)
	}
	m.next = next
	m.pending = true
	return nil
}

func (m *Machine) CommitState() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.pending {
		return ErrNoPendingState
	}
	m.current = m.next
	m.pending = false
	return nil
}

// RollbackState discards a staged transition. It succeeds when nothing is
// staged.
func (m *Machine) RollbackState() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next = m.current
	m.pending = false
	return nil
}

// Do runs cmd through SetState and CommitState.
func (m *Machine) Do(cmd Command) error {
	if err := m.SetState(cmd); err != nil {
		return err
	}
	return m.CommitState()
}

func (m *Machine) IsSmoothZoomActive() bool {
	return m.State()&StateZoomActive != 0
}

func (m *Machine) RequestStopSmoothZoom() error {
	return m.SetState(CommandStopSmoothZoom)
}
