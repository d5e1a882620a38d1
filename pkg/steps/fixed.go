package steps

import "fmt"

// Fixed is a 16.16 fixed point scale factor. One is a 1.0x zoom.
type Fixed int32

const One Fixed = 1 << 16

func (f Fixed) Float64() float64 {
	return float64(f) / float64(One)
}

// Percent returns the scale as an integer percentage, truncated, in the
// form camera applications expect for zoom ratios.
func (f Fixed) Percent() int {
	return int(int64(f) * 100 / int64(One))
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.3fx", f.Float64())
}
