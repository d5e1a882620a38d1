package zoom

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/kevmo314/go-zoom/pkg/steps"
)

// Config configures a Controller. Applier and State are required.
type Config struct {
	// Table maps zoom indexes to scale factors. Defaults to steps.Default().
	Table *steps.Table
	// MaxSupported is the number of zoom levels exposed to applications.
	// Defaults to, and may not exceed, the table length.
	MaxSupported int

	Applier ConfigApplier
	State   AdapterState
	Logger  *slog.Logger
}

// State is a snapshot of the controller's zoom state.
type State struct {
	Current   int
	Target    int
	Parameter int
	// Applied is the last index successfully programmed on the hardware.
	Applied int
	Step    int

	ReturnToParameter bool
	Updating          bool
	PendingUpdate     bool
	Component         ComponentState
}

// Controller owns the zoom state. Every exported method holds the controller
// lock for its whole duration, so requests and Advance never interleave.
type Controller struct {
	mu sync.Mutex

	table   *steps.Table
	max     int
	applier ConfigApplier
	state   AdapterState
	logger  *slog.Logger
	subs    subscribers

	component ComponentState

	current   int
	target    int
	parameter int
	step      int

	// applied and appliedCtx describe what the hardware was last programmed with.
	applied    int
	appliedCtx steps.Context

	returnToParameter bool

	// updating is set while an immediate zoom apply is considered in flight.
	// A request arriving meanwhile only sets pendingUpdate, and the next
	// Advance reprograms whatever the target is by then.
	updating      bool
	pendingUpdate bool
}

func New(cfg Config) (*Controller, error) {
	if cfg.Applier == nil {
		return nil, errors.New("zoom: config applier is required")
	}
	if cfg.State == nil {
		return nil, errors.New("zoom: adapter state is required")
	}
	table := cfg.Table
	if table == nil {
		table = steps.Default()
	}
	maxSupported := cfg.MaxSupported
	if maxSupported == 0 {
		maxSupported = table.Len()
	}
	if maxSupported < 1 || maxSupported > table.Len() {
		return nil, fmt.Errorf("zoom: max supported %d not in [1, %d]", maxSupported, table.Len())
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		table:     table,
		max:       maxSupported,
		applier:   cfg.Applier,
		state:     cfg.State,
		logger:    logger,
		component: ComponentStateLoaded,
		step:      1,
	}, nil
}

func (c *Controller) MaxSupported() int {
	return c.max
}

func (c *Controller) Table() *steps.Table {
	return c.table
}

// SetComponentState records the lifecycle state reported by the component.
func (c *Controller) SetComponentState(s ComponentState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.component = s
}

// ParameterIndex is the zoom index recorded when the current smooth zoom
// started, to be reported back to the application.
func (c *Controller) ParameterIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.parameter
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Current:           c.current,
		Target:            c.target,
		Parameter:         c.parameter,
		Applied:           c.applied,
		Step:              c.step,
		ReturnToParameter: c.returnToParameter,
		Updating:          c.updating,
		PendingUpdate:     c.pendingUpdate,
		Component:         c.component,
	}
}

func (c *Controller) Subscribe(sub Subscriber) uuid.UUID {
	return c.subs.add(sub)
}

func (c *Controller) Unsubscribe(id uuid.UUID) error {
	return c.subs.remove(id)
}

func (c *Controller) inRange(index int) error {
	if index < 0 || index >= c.max {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, c.max)
	}
	return nil
}

// RequestImmediateZoom jumps straight to index. It is ignored while a smooth
// zoom is running. If a previous immediate zoom is still being applied the
// request is coalesced into a single reapply on the next Advance.
func (c *Controller) RequestImmediateZoom(index int, ctx steps.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.inRange(index); err != nil {
		return err
	}
	if c.state.IsSmoothZoomActive() {
		c.logger.Debug("zoom: immediate zoom ignored during smooth zoom", "index", index)
		return nil
	}

	c.target = index
	c.current = index
	// an interrupted smooth zoom has nothing left to finish
	c.returnToParameter = false
	c.logger.Debug("zoom: immediate zoom", "index", index)

	if c.updating {
		c.pendingUpdate = true
		return nil
	}
	c.updating = true
	return c.apply(index, ctx, false)
}

// RequestSmoothZoomStart sets the target of an animated zoom. The adapter is
// expected to be in its smooth zoom state while Advance walks to the target.
func (c *Controller) RequestSmoothZoomStart(target int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.inRange(target); err != nil {
		c.logger.Error("zoom: smooth zoom target out of range", "target", target)
		return err
	}
	c.logger.Debug("zoom: start smooth zoom", "target", target, "current", c.current)
	c.target = target
	c.parameter = c.current
	c.returnToParameter = false
	return nil
}

// RequestSmoothZoomStop interrupts a smooth zoom. The next Advance takes one
// more step toward the target and finishes there.
func (c *Controller) RequestSmoothZoomStop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == c.target {
		return nil
	}
	c.step = sign(c.target - c.current)
	c.returnToParameter = true
	c.logger.Debug("zoom: stop smooth zoom", "current", c.current, "target", c.target, "parameter", c.parameter)
	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
