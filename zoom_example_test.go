package zoom_test

import (
	"fmt"
	"io"
	"log/slog"

	zoom "github.com/kevmo314/go-zoom"
	"github.com/kevmo314/go-zoom/pkg/adapter"
	"github.com/kevmo314/go-zoom/pkg/omxsim"
	"github.com/kevmo314/go-zoom/pkg/steps"
)

func Example() {
	component := omxsim.New()
	machine := adapter.NewMachine()
	if err := machine.Do(adapter.CommandStartPreview); err != nil {
		panic(err)
	}

	ctrl, err := zoom.New(zoom.Config{
		Applier: component,
		State:   machine,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		panic(err)
	}
	component.OnStateChange(ctrl.SetComponentState)
	ctrl.Subscribe(zoom.SubscriberFunc(func(index int, final bool) error {
		fmt.Printf("zoom %d final=%t\n", index, final)
		return nil
	}))

	if err := machine.SetState(adapter.CommandStartSmoothZoom); err != nil {
		panic(err)
	}
	if err := ctrl.RequestSmoothZoomStart(3); err != nil {
		machine.RollbackState()
		panic(err)
	}
	if err := machine.CommitState(); err != nil {
		panic(err)
	}

	for machine.IsSmoothZoomActive() {
		if err := ctrl.Advance(steps.Context{}); err != nil {
			panic(err)
		}
	}
	fmt.Println("hardware at", component.Current())
	// Output:
	// zoom 1 final=false
	// zoom 2 final=false
	// zoom 3 final=true
	// hardware at 1.110x
}
