package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	zoom "github.com/kevmo314/go-zoom"
	"github.com/kevmo314/go-zoom/pkg/adapter"
	"github.com/kevmo314/go-zoom/pkg/steps"
)

// trackingApplier remembers the last scale the hardware accepted so the
// preview can follow it.
type trackingApplier struct {
	next zoom.ConfigApplier
	last atomic.Int32
}

func newTrackingApplier(next zoom.ConfigApplier) *trackingApplier {
	t := &trackingApplier{next: next}
	t.last.Store(int32(steps.One))
	return t
}

func (t *trackingApplier) ApplyZoomScale(width, height steps.Fixed) error {
	if err := t.next.ApplyZoomScale(width, height); err != nil {
		return err
	}
	t.last.Store(int32(height))
	return nil
}

func (t *trackingApplier) Scale() steps.Fixed {
	return steps.Fixed(t.last.Load())
}

// session plays the camera service: it turns key presses into zoom requests
// and owns the device context handed to the controller on every frame.
type session struct {
	ctrl    *zoom.Controller
	machine *adapter.Machine
	applier *trackingApplier
	logger  *slog.Logger

	// mu guards ctx and serializes frame ticks with multi-step adapter
	// changes. Zoom subscribers must not call back into the session.
	mu        sync.Mutex
	ctx       steps.Context
	stillMode steps.CaptureMode
}

func newSession(ctrl *zoom.Controller, machine *adapter.Machine, applier *trackingApplier, ctx steps.Context, logger *slog.Logger) *session {
	still := ctx.CaptureMode
	if still.IsVideo() {
		still = steps.CaptureModeHighSpeed
	}
	return &session{ctrl: ctrl, machine: machine, applier: applier, logger: logger, ctx: ctx, stillMode: still}
}

func (s *session) Context() steps.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// Tick is called once per preview frame.
func (s *session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ctrl.Advance(s.ctx); err != nil {
		s.logger.Error("zoomctl: advance failed", "error", err)
	}
}

// Key handles a single key press and reports whether the tool should exit.
func (s *session) Key(r rune) bool {
	top := s.ctrl.MaxSupported() - 1
	switch {
	case r == 'q':
		return true
	case r == '+' || r == '=':
		s.smoothZoom(top)
	case r == '-':
		s.smoothZoom(0)
	case r == 's':
		if err := s.ctrl.RequestSmoothZoomStop(); err != nil {
			s.logger.Error("zoomctl: stop smooth zoom failed", "error", err)
		}
	case r >= '0' && r <= '9':
		index := int(r-'0') * top / 9
		if err := s.ctrl.RequestImmediateZoom(index, s.Context()); err != nil {
			s.logger.Error("zoomctl: immediate zoom failed", "index", index, "error", err)
		}
	case r == 'v':
		s.toggleVideo()
	case r == 'f':
		s.switchSensor()
	}
	return false
}

func (s *session) smoothZoom(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.machine.SetState(adapter.CommandStartSmoothZoom); err != nil {
		s.logger.Warn("zoomctl: cannot start smooth zoom", "error", err)
		return
	}
	if err := s.ctrl.RequestSmoothZoomStart(target); err != nil {
		s.logger.Error("zoomctl: start smooth zoom failed", "target", target, "error", err)
		s.machine.RollbackState()
		return
	}
	if err := s.machine.CommitState(); err != nil {
		s.logger.Error("zoomctl: commit smooth zoom failed", "error", err)
	}
}

func (s *session) toggleVideo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, mode := adapter.CommandStartVideo, steps.CaptureModeVideo
	if s.ctx.IsVideo() {
		cmd, mode = adapter.CommandStopVideo, s.stillMode
	}
	if err := s.machine.Do(cmd); err != nil {
		s.logger.Warn("zoomctl: capture mode change refused", "command", cmd, "error", err)
		return
	}
	s.ctx.CaptureMode = mode
	s.logger.Info("zoomctl: capture mode", "mode", mode)
	s.reapplyZoom()
}

func (s *session) switchSensor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Sensor == steps.SensorFront {
		s.ctx.Sensor = steps.SensorBack
	} else {
		s.ctx.Sensor = steps.SensorFront
	}
	s.logger.Info("zoomctl: switched sensor", "sensor", s.ctx.Sensor)
	s.reapplyZoom()
}

// reapplyZoom sends the current zoom again after a device context change,
// since the scale at index 0 depends on the context. Must be called with
// s.mu held.
func (s *session) reapplyZoom() {
	index := s.ctrl.Snapshot().Current
	if err := s.ctrl.RequestImmediateZoom(index, s.ctx); err != nil {
		s.logger.Error("zoomctl: reapplying zoom failed", "index", index, "error", err)
	}
}

func (s *session) Status() string {
	st := s.ctrl.Snapshot()
	ctx := s.Context()
	scale := s.applier.Scale()

	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]zoom[-]      %d -> %d (of %d)\n", st.Current, st.Target, s.ctrl.MaxSupported())
	fmt.Fprintf(&b, "[yellow]scale[-]     %s (%d%%)\n", scale, scale.Percent())
	fmt.Fprintf(&b, "[yellow]parameter[-] %d\n", st.Parameter)
	fmt.Fprintf(&b, "[yellow]adapter[-]   %s\n", s.machine.State())
	fmt.Fprintf(&b, "[yellow]component[-] %s\n", st.Component)
	fmt.Fprintf(&b, "[yellow]mode[-]      %s / %s sensor\n", ctx.CaptureMode, ctx.Sensor)
	fmt.Fprintf(&b, "[yellow]flags[-]     updating=%t pending=%t return=%t\n\n", st.Updating, st.PendingUpdate, st.ReturnToParameter)
	b.WriteString("+/- smooth zoom in/out, 0-9 immediate zoom, s stop\nv toggle video, f switch sensor, q quit")
	return b.String()
}

func formatRatio(index, percent int) string {
	return fmt.Sprintf("%2d  %d.%02dx\n", index, percent/100, percent%100)
}
