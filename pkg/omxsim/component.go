// Package omxsim is an in-memory stand-in for the OMX camera component. It
// accepts digital zoom configurations the way OMX_SetConfig does, keeps the
// encoded OMX_CONFIG_SCALEFACTORTYPE payloads and can be told to fail.
package omxsim

import (
	"fmt"
	"sync"

	zoom "github.com/kevmo314/go-zoom"
	"github.com/kevmo314/go-zoom/pkg/descriptors"
	"github.com/kevmo314/go-zoom/pkg/steps"
)

// ErrorType mirrors OMX_ERRORTYPE.
type ErrorType uint32

const (
	ErrorNone                    ErrorType = 0
	ErrorInsufficientResources   ErrorType = 0x80001000
	ErrorUndefined               ErrorType = 0x80001001
	ErrorBadParameter            ErrorType = 0x80001005
	ErrorHardware                ErrorType = 0x80001009
	ErrorInvalidState            ErrorType = 0x8000100A
	ErrorIncorrectStateOperation ErrorType = 0x80001018
)

func (e ErrorType) Error() string {
	switch e {
	case ErrorInsufficientResources:
		return "omx error 0x80001000 (insufficient resources)"
	case ErrorUndefined:
		return "omx error 0x80001001 (undefined)"
	case ErrorBadParameter:
		return "omx error 0x80001005 (bad parameter)"
	case ErrorHardware:
		return "omx error 0x80001009 (hardware)"
	case ErrorInvalidState:
		return "omx error 0x8000100a (invalid state)"
	case ErrorIncorrectStateOperation:
		return "omx error 0x80001018 (incorrect state operation)"
	default:
		return fmt.Sprintf("omx error %#x", uint32(e))
	}
}

// Component implements zoom.ConfigApplier.
type Component struct {
	mu       sync.Mutex
	state    zoom.ComponentState
	configs  [][]byte
	failures []ErrorType
	onState  []func(zoom.ComponentState)
}

// New returns a component in the Executing state.
func New() *Component {
	return &Component{state: zoom.ComponentStateExecuting}
}

// OnStateChange registers fn to be called on every lifecycle change, the way
// the adapter's OMX event handler learns about state transitions.
func (c *Component) OnStateChange(fn func(zoom.ComponentState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onState = append(c.onState, fn)
}

func (c *Component) State() zoom.ComponentState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Component) SetState(s zoom.ComponentState) {
	c.mu.Lock()
	c.state = s
	listeners := append([]func(zoom.ComponentState){}, c.onState...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}

// FailNext makes the next len(errs) configuration calls fail with errs, in order.
func (c *Component) FailNext(errs ...ErrorType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, errs...)
}

func (c *Component) ApplyZoomScale(width, height steps.Fixed) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == zoom.ComponentStateInvalid {
		return ErrorInvalidState
	}
	if len(c.failures) > 0 {
		err := c.failures[0]
		c.failures = c.failures[1:]
		return err
	}

	buf, err := descriptors.NewScaleFactorConfig(int32(width), int32(height)).MarshalBinary()
	if err != nil {
		return err
	}
	c.configs = append(c.configs, buf)
	return nil
}

// Applied decodes every configuration accepted so far.
func (c *Component) Applied() ([]descriptors.ScaleFactorConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	configs := make([]descriptors.ScaleFactorConfig, len(c.configs))
	for i, buf := range c.configs {
		if err := configs[i].UnmarshalBinary(buf); err != nil {
			return nil, fmt.Errorf("config %d: %w", i, err)
		}
	}
	return configs, nil
}

// Current returns the last accepted scale factor, or 1.0x if none.
func (c *Component) Current() steps.Fixed {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.configs) == 0 {
		return steps.One
	}
	var sfc descriptors.ScaleFactorConfig
	if err := sfc.UnmarshalBinary(c.configs[len(c.configs)-1]); err != nil {
		return steps.One
	}
	return steps.Fixed(sfc.Height)
}
