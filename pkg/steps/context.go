package steps

import (
	"fmt"
	"strings"
)

type CaptureMode int

const (
	CaptureModeHighSpeed CaptureMode = iota
	CaptureModeHighQuality
	CaptureModeHighQualityZSL
	CaptureModeVideo
	CaptureModeVideoHighQuality
	CaptureModeCPCam
)

var captureModeNames = map[CaptureMode]string{
	CaptureModeHighSpeed:        "high-speed",
	CaptureModeHighQuality:      "high-quality",
	CaptureModeHighQualityZSL:   "high-quality-zsl",
	CaptureModeVideo:            "video",
	CaptureModeVideoHighQuality: "video-hq",
	CaptureModeCPCam:            "cp-cam",
}

func (m CaptureMode) String() string {
	if name, ok := captureModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CaptureMode(%d)", int(m))
}

// IsVideo reports whether m is one of the video recording modes.
func (m CaptureMode) IsVideo() bool {
	return m == CaptureModeVideo || m == CaptureModeVideoHighQuality
}

func ParseCaptureMode(s string) (CaptureMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range captureModeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown capture mode %q", s)
}

// SensorID identifies the active image sensor.
type SensorID int

const (
	SensorBack  SensorID = 0
	SensorFront SensorID = 1
)

func (s SensorID) String() string {
	switch s {
	case SensorBack:
		return "back"
	case SensorFront:
		return "front"
	default:
		return fmt.Sprintf("sensor%d", int(s))
	}
}

func ParseSensor(s string) (SensorID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "back", "0":
		return SensorBack, nil
	case "front", "1":
		return SensorFront, nil
	}
	return 0, fmt.Errorf("unknown sensor %q", s)
}

// Context is the device state that affects how a zoom index is resolved.
type Context struct {
	CaptureMode CaptureMode
	Sensor      SensorID
}

func (c Context) IsVideo() bool {
	return c.CaptureMode.IsVideo()
}

// Differs reports whether switching from c to other changes the resolved
// value of a context sensitive index.
func (c Context) Differs(other Context) bool {
	return c.IsVideo() != other.IsVideo() || c.Sensor != other.Sensor
}
