package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kevmo314/go-zoom/pkg/steps"
	"github.com/kevmo314/go-zoom/pkg/uvcapply"
)

// DeviceConfig selects a UVC camera to drive instead of the simulated
// component.
type DeviceConfig struct {
	Path      string `yaml:"path"`
	Interface uint8  `yaml:"interface"`
	UnitID    uint8  `yaml:"unit_id"`
	Control   string `yaml:"control"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type Config struct {
	FPS         int          `yaml:"fps"`
	MaxZoom     int          `yaml:"max_zoom"`
	CaptureMode string       `yaml:"capture_mode"`
	Sensor      string       `yaml:"sensor"`
	Quirks      string       `yaml:"quirks"`
	Preview     bool         `yaml:"preview"`
	LogLevel    string       `yaml:"log_level"`
	Device      DeviceConfig `yaml:"device"`
}

func Default() *Config {
	return &Config{
		FPS:         30,
		CaptureMode: "high-speed",
		Sensor:      "back",
		Quirks:      "default",
		LogLevel:    "info",
		Device: DeviceConfig{
			Interface: 0,
			UnitID:    1,
			Control:   "zoom-absolute",
			TimeoutMS: 1000,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.MaxZoom < 0 || c.MaxZoom > steps.Stages {
		return fmt.Errorf("max_zoom must be in [0, %d], got %d", steps.Stages, c.MaxZoom)
	}
	if _, err := c.Context(); err != nil {
		return err
	}
	if _, err := c.Override(); err != nil {
		return err
	}
	if _, err := uvcapply.ParseKind(c.Device.Control); err != nil {
		return err
	}
	return nil
}

// Context returns the initial device context.
func (c *Config) Context() (steps.Context, error) {
	mode, err := steps.ParseCaptureMode(c.CaptureMode)
	if err != nil {
		return steps.Context{}, err
	}
	sensor, err := steps.ParseSensor(c.Sensor)
	if err != nil {
		return steps.Context{}, err
	}
	return steps.Context{CaptureMode: mode, Sensor: sensor}, nil
}

func (c *Config) Override() (steps.Override, error) {
	o, ok := steps.OverrideByName(c.Quirks)
	if !ok {
		return nil, fmt.Errorf("unknown quirks %q", c.Quirks)
	}
	return o, nil
}

func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// UVC returns the applier configuration for the configured device.
func (c *Config) UVC() (uvcapply.Config, error) {
	kind, err := uvcapply.ParseKind(c.Device.Control)
	if err != nil {
		return uvcapply.Config{}, err
	}
	return uvcapply.Config{
		Interface: c.Device.Interface,
		UnitID:    c.Device.UnitID,
		Kind:      kind,
		Timeout:   time.Duration(c.Device.TimeoutMS) * time.Millisecond,
	}, nil
}
