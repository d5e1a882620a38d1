package omxsim

import (
	"errors"
	"testing"

	zoom "github.com/kevmo314/go-zoom"
	"github.com/kevmo314/go-zoom/pkg/descriptors"
	"github.com/kevmo314/go-zoom/pkg/steps"
)

func TestComponentRecordsConfigs(t *testing.T) {
	c := New()
	if c.Current() != steps.One {
		t.Errorf("Current() = %d before any config, want %d", c.Current(), steps.One)
	}
	for _, scale := range []steps.Fixed{68157, 70124} {
		if err := c.ApplyZoomScale(scale, scale); err != nil {
			t.Fatalf("ApplyZoomScale(%d) failed: %v", scale, err)
		}
	}

	configs, err := c.Applied()
	if err != nil {
		t.Fatal(err)
	}
	if len(configs) != 2 {
		t.Fatalf("len(Applied()) = %d, want 2", len(configs))
	}
	if configs[1].Width != 70124 || configs[1].Height != 70124 {
		t.Errorf("configs[1] = %+v, want 70124x70124", configs[1])
	}
	if configs[0].PortIndex != descriptors.OMXAllPorts {
		t.Errorf("PortIndex = %#x, want OMX_ALL", configs[0].PortIndex)
	}
	if c.Current() != 70124 {
		t.Errorf("Current() = %d, want 70124", c.Current())
	}
}

func TestComponentFailNext(t *testing.T) {
	c := New()
	c.FailNext(ErrorBadParameter, ErrorHardware)

	if err := c.ApplyZoomScale(steps.One, steps.One); !errors.Is(err, ErrorBadParameter) {
		t.Errorf("first ApplyZoomScale error = %v, want bad parameter", err)
	}
	if err := c.ApplyZoomScale(steps.One, steps.One); !errors.Is(err, ErrorHardware) {
		t.Errorf("second ApplyZoomScale error = %v, want hardware", err)
	}
	if err := c.ApplyZoomScale(steps.One, steps.One); err != nil {
		t.Errorf("third ApplyZoomScale failed: %v", err)
	}
	configs, _ := c.Applied()
	if len(configs) != 1 {
		t.Errorf("len(Applied()) = %d, want 1", len(configs))
	}
}

func TestComponentInvalidState(t *testing.T) {
	c := New()
	var seen []zoom.ComponentState
	c.OnStateChange(func(s zoom.ComponentState) { seen = append(seen, s) })

	c.SetState(zoom.ComponentStateInvalid)
	if err := c.ApplyZoomScale(steps.One, steps.One); !errors.Is(err, ErrorInvalidState) {
		t.Errorf("ApplyZoomScale error = %v, want invalid state", err)
	}
	c.SetState(zoom.ComponentStateIdle)

	if len(seen) != 2 || seen[0] != zoom.ComponentStateInvalid || seen[1] != zoom.ComponentStateIdle {
		t.Errorf("state notifications = %v, want [Invalid Idle]", seen)
	}
}
