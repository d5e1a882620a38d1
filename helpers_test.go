package zoom

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/kevmo314/go-zoom/pkg/steps"
)

// recordingApplier records every scale factor sent to the hardware.
type recordingApplier struct {
	calls []steps.Fixed
	fail  []error
}

func (a *recordingApplier) ApplyZoomScale(width, height steps.Fixed) error {
	if width != height {
		return errors.New("non-uniform scale")
	}
	if len(a.fail) > 0 {
		err := a.fail[0]
		a.fail = a.fail[1:]
		return err
	}
	a.calls = append(a.calls, width)
	return nil
}

// fakeState is a minimal adapter state with injectable failures.
type fakeState struct {
	active  bool
	staged  bool
	failReq error
	failCom error
	failRb  error

	requests, commits, rollbacks int
}

func (s *fakeState) IsSmoothZoomActive() bool { return s.active }

func (s *fakeState) RequestStopSmoothZoom() error {
	s.requests++
	if s.failReq != nil {
		return s.failReq
	}
	s.staged = true
	return nil
}

func (s *fakeState) CommitState() error {
	s.commits++
	if s.failCom != nil {
		return s.failCom
	}
	if s.staged {
		s.active = false
		s.staged = false
	}
	return nil
}

func (s *fakeState) RollbackState() error {
	s.rollbacks++
	s.staged = false
	return s.failRb
}

type harness struct {
	ctrl    *Controller
	applier *recordingApplier
	state   *fakeState
	notes   []notification
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHarness(t *testing.T, table *steps.Table, maxSupported int) *harness {
	t.Helper()
	h := &harness{applier: &recordingApplier{}, state: &fakeState{}}
	ctrl, err := New(Config{
		Table:        table,
		MaxSupported: maxSupported,
		Applier:      h.applier,
		State:        h.state,
		Logger:       quietLogger(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctrl.Subscribe(SubscriberFunc(func(index int, final bool) error {
		h.notes = append(h.notes, notification{index, final})
		return nil
	}))
	h.ctrl = ctrl
	return h
}

// startSmooth puts the fake adapter into the smooth zoom state and sets target.
func (h *harness) startSmooth(t *testing.T, target int) {
	t.Helper()
	h.state.active = true
	if err := h.ctrl.RequestSmoothZoomStart(target); err != nil {
		t.Fatalf("RequestSmoothZoomStart(%d) failed: %v", target, err)
	}
}

func (h *harness) advance(t *testing.T) {
	t.Helper()
	if err := h.ctrl.Advance(steps.Context{}); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
}

func step(t *testing.T, table *steps.Table, index int) steps.Fixed {
	t.Helper()
	s, err := table.Step(index)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// geometricTable builds an n stage table growing by roughly 3.4% per stage.
func geometricTable(t *testing.T, n int) *steps.Table {
	t.Helper()
	values := make([]steps.Fixed, n)
	v := steps.One
	for i := range values {
		values[i] = v
		v += v / 30
	}
	table, err := steps.NewTable(values, nil)
	if err != nil {
		t.Fatal(err)
	}
	return table
}
