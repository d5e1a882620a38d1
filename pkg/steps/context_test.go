package steps

import "testing"

func TestParseCaptureMode(t *testing.T) {
	for mode, name := range captureModeNames {
		got, err := ParseCaptureMode(name)
		if err != nil {
			t.Fatalf("ParseCaptureMode(%q) failed: %v", name, err)
		}
		if got != mode {
			t.Errorf("ParseCaptureMode(%q) = %v, want %v", name, got, mode)
		}
	}
	if _, err := ParseCaptureMode("slow-motion"); err == nil {
		t.Error("ParseCaptureMode(slow-motion) succeeded, want error")
	}
}

func TestParseSensor(t *testing.T) {
	if s, err := ParseSensor("Front"); err != nil || s != SensorFront {
		t.Errorf("ParseSensor(Front) = %v, %v", s, err)
	}
	if s, err := ParseSensor("0"); err != nil || s != SensorBack {
		t.Errorf("ParseSensor(0) = %v, %v", s, err)
	}
	if _, err := ParseSensor("side"); err == nil {
		t.Error("ParseSensor(side) succeeded, want error")
	}
}

func TestContextDiffers(t *testing.T) {
	preview := Context{CaptureMode: CaptureModeHighSpeed}
	hq := Context{CaptureMode: CaptureModeHighQuality}
	video := Context{CaptureMode: CaptureModeVideo}
	videoHQ := Context{CaptureMode: CaptureModeVideoHighQuality}
	front := Context{CaptureMode: CaptureModeHighSpeed, Sensor: SensorFront}

	if preview.Differs(hq) {
		t.Error("two still modes should not differ")
	}
	if video.Differs(videoHQ) {
		t.Error("two video modes should not differ")
	}
	if !preview.Differs(video) {
		t.Error("still and video modes should differ")
	}
	if !preview.Differs(front) {
		t.Error("sensor switch should differ")
	}
}

func TestOverrideByName(t *testing.T) {
	if o, ok := OverrideByName("tuna"); !ok || o != TunaVideoFloor {
		t.Errorf("OverrideByName(tuna) = %v, %t", o, ok)
	}
	if o, ok := OverrideByName("none"); !ok || o != (NoOverride{}) {
		t.Errorf("OverrideByName(none) = %v, %t", o, ok)
	}
	if _, ok := OverrideByName("default"); !ok {
		t.Error("OverrideByName(default) not found")
	}
	if _, ok := OverrideByName("pixel"); ok {
		t.Error("OverrideByName(pixel) found, want missing")
	}
}

func TestFixed(t *testing.T) {
	if One.Percent() != 100 {
		t.Errorf("One.Percent() = %d, want 100", One.Percent())
	}
	if Fixed(66816).Percent() != 101 {
		t.Errorf("Percent() = %d, want 101", Fixed(66816).Percent())
	}
	if s := (2 * One).String(); s != "2.000x" {
		t.Errorf("String() = %q, want 2.000x", s)
	}
}
