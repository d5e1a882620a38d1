package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/kevmo314/go-zoom/pkg/steps"
)

// Preview shows a test pattern cropped and scaled by the digital zoom the
// hardware currently has applied.
type Preview struct {
	scale   func() steps.Fixed
	pattern *image.RGBA
	frame   *image.RGBA
}

func NewPreview(scale func() steps.Fixed, width, height int) *Preview {
	return &Preview{
		scale:   scale,
		pattern: testPattern(width, height),
		frame:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func (p *Preview) Update() error {
	return nil
}

func (p *Preview) Draw(screen *ebiten.Image) {
	p.render()
	screen.WritePixels(p.frame.Pix)
}

func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.frame.Bounds().Dx(), p.frame.Bounds().Dy()
}

func (p *Preview) render() {
	crop := cropRect(p.pattern.Bounds(), p.scale())
	draw.ApproxBiLinear.Scale(p.frame, p.frame.Bounds(), p.pattern, crop, draw.Src, nil)
}

// cropRect returns the centered region of b that fills the frame at scale.
func cropRect(b image.Rectangle, scale steps.Fixed) image.Rectangle {
	if scale < steps.One {
		scale = steps.One
	}
	w := int(int64(b.Dx()) * int64(steps.One) / int64(scale))
	h := int(int64(b.Dy()) * int64(steps.One) / int64(scale))
	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

func testPattern(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cx, cy := width/2, height/2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 96,
				A: 255,
			}
			if x%40 == 0 || y%40 == 0 {
				c = color.RGBA{A: 255}
			}
			dx, dy := x-cx, y-cy
			if d := dx*dx + dy*dy; d/400%2 == 0 && d < 400*12 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func runPreview(scale func() steps.Fixed) error {
	p := NewPreview(scale, 640, 480)
	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowTitle("zoomctl preview")
	return ebiten.RunGame(p)
}
