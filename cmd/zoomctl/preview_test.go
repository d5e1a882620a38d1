package main

import (
	"image"
	"testing"

	"github.com/kevmo314/go-zoom/pkg/steps"
)

func TestCropRect(t *testing.T) {
	b := image.Rect(0, 0, 640, 480)
	tests := []struct {
		scale steps.Fixed
		want  image.Rectangle
	}{
		{steps.One, b},
		{steps.One / 2, b},
		{2 * steps.One, image.Rect(160, 120, 480, 360)},
		{8 * steps.One, image.Rect(280, 210, 360, 270)},
	}
	for _, tt := range tests {
		if got := cropRect(b, tt.scale); got != tt.want {
			t.Errorf("cropRect(%s) = %v, want %v", tt.scale, got, tt.want)
		}
	}
}

func TestPreviewRenderFollowsScale(t *testing.T) {
	scale := steps.One
	p := NewPreview(func() steps.Fixed { return scale }, 160, 120)

	p.render()
	if p.frame.RGBAAt(0, 0) != p.pattern.RGBAAt(0, 0) {
		t.Errorf("frame corner = %v at 1.0x, want pattern corner %v", p.frame.RGBAAt(0, 0), p.pattern.RGBAAt(0, 0))
	}

	scale = 4 * steps.One
	p.render()
	if p.frame.RGBAAt(0, 0) == p.pattern.RGBAAt(0, 0) {
		t.Error("frame corner unchanged at 4.0x")
	}
}
