package steps

// Override replaces the scale of zoom index 0 for specific device contexts.
// It is never consulted for any other index.
type Override interface {
	ZoomFloor(ctx Context) (Fixed, bool)
}

// NoOverride leaves the table untouched.
type NoOverride struct{}

func (NoOverride) ZoomFloor(Context) (Fixed, bool) {
	return 0, false
}

// VideoFloorOverride applies a small minimum zoom while a video capture mode is
// active. Some sensors duplicate rows from the opposite edge into the top or
// bottom of video frames, and cropping slightly hides the bands.
type VideoFloorOverride struct {
	Front Fixed
	Back  Fixed
}

// TunaVideoFloor holds the floors measured on the OMAP4 "tuna" boards.
var TunaVideoFloor = VideoFloorOverride{
	Front: 66816, // One + 1280
	Back:  66304, // One + 768
}

func (o VideoFloorOverride) ZoomFloor(ctx Context) (Fixed, bool) {
	if !ctx.IsVideo() {
		return 0, false
	}
	if ctx.Sensor == SensorFront {
		return o.Front, true
	}
	return o.Back, true
}

// OverrideByName maps a configuration name to an override. The empty string
// and "default" select the build's default.
func OverrideByName(name string) (Override, bool) {
	switch name {
	case "", "default":
		return DefaultOverride(), true
	case "none":
		return NoOverride{}, true
	case "tuna":
		return TunaVideoFloor, true
	}
	return nil, false
}
