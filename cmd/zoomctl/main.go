package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	zoom "github.com/kevmo314/go-zoom"
	"github.com/kevmo314/go-zoom/internal/config"
	"github.com/kevmo314/go-zoom/pkg/adapter"
	"github.com/kevmo314/go-zoom/pkg/omxsim"
	"github.com/kevmo314/go-zoom/pkg/steps"
	"github.com/kevmo314/go-zoom/pkg/uvcapply"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	path := flag.String("path", "", "path to a usb camera, drives a simulated component if empty")
	fps := flag.Int("fps", 0, "frames per second driving smooth zoom")
	render := flag.Bool("render", false, "show a preview window following the applied zoom (requires a display)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *path != "" {
		cfg.Device.Path = *path
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *render {
		cfg.Preview = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, err := cfg.Context()
	if err != nil {
		log.Fatal(err)
	}
	override, err := cfg.Override()
	if err != nil {
		log.Fatal(err)
	}
	table := steps.Default().WithOverride(override)

	app := tview.NewApplication()

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetBorder(true).SetTitle("Zoom")

	ratios := tview.NewTextView()
	ratios.SetBorder(true).SetTitle("Zoom Ratios")

	logText := tview.NewTextView()
	logText.SetMaxLines(200).SetBorder(true).SetTitle("Log")
	logText.SetChangedFunc(func() { app.Draw() })

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("invalid log level %q: %s", cfg.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(logText, &slog.HandlerOptions{Level: level}))
	log.SetOutput(logText)

	hw, closer, err := openApplier(cfg, table)
	if err != nil {
		log.Fatalf("failed to open zoom applier: %s", err)
	}
	defer closer.Close()

	applier := newTrackingApplier(hw)
	machine := adapter.NewMachine()
	if err := machine.Do(adapter.CommandStartPreview); err != nil {
		log.Fatal(err)
	}
	if ctx.IsVideo() {
		if err := machine.Do(adapter.CommandStartVideo); err != nil {
			log.Fatal(err)
		}
	}

	ctrl, err := zoom.New(zoom.Config{
		Table:        table,
		MaxSupported: cfg.MaxZoom,
		Applier:      applier,
		State:        machine,
		Logger:       logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	if sim, ok := hw.(*omxsim.Component); ok {
		ctrl.SetComponentState(sim.State())
		sim.OnStateChange(ctrl.SetComponentState)
	}
	ctrl.Subscribe(zoom.SubscriberFunc(func(index int, final bool) error {
		logger.Info("zoomctl: smooth zoom progress", "index", index, "final", final)
		return nil
	}))

	for i, r := range table.Ratios(ctrl.MaxSupported()) {
		ratios.Write([]byte(formatRatio(i, r)))
	}

	s := newSession(ctrl, machine, applier, ctx, logger)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && s.Key(event.Rune()) {
			app.Stop()
			return nil
		}
		return event
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(cfg.FrameInterval())
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Tick()
				app.QueueUpdateDraw(func() {
					status.SetText(s.Status())
				})
			}
		}
	}()

	if cfg.Preview {
		go func() {
			if err := runPreview(applier.Scale); err != nil {
				logger.Error("zoomctl: preview failed", "error", err)
			}
		}()
	}

	top := tview.NewFlex().AddItem(status, 0, 2, false).AddItem(ratios, 16, 0, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).AddItem(top, 0, 1, false).AddItem(logText, 12, 0, false)
	if err := app.SetRoot(root, true).Run(); err != nil {
		panic(err)
	}
}

func openApplier(cfg *config.Config, table *steps.Table) (zoom.ConfigApplier, io.Closer, error) {
	if cfg.Device.Path == "" {
		return omxsim.New(), io.NopCloser(nil), nil
	}
	uvcCfg, err := cfg.UVC()
	if err != nil {
		return nil, nil, err
	}
	uvcCfg.MaxScale = table.Max()
	a, err := uvcapply.Open(cfg.Device.Path, uvcCfg)
	if err != nil {
		return nil, nil, err
	}
	min, max := a.Range()
	cur, err := a.Current()
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	log.Printf("zoom control range [%d, %d], current %d", min, max, cur)
	return a, a, nil
}
