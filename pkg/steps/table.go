package steps

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("zoom index out of range")
	ErrInvalidTable    = errors.New("invalid zoom step table")
)

// defaultSteps maps each digital zoom stage to its scale factor, 1.0x to 8.0x.
var defaultSteps = [...]Fixed{
	65536, 68157, 70124, 72745,
	75366, 77988, 80609, 83231,
	86508, 89784, 92406, 95683,
	99615, 102892, 106168, 110100,
	114033, 117965, 122552, 126484,
	131072, 135660, 140247, 145490,
	150733, 155976, 161219, 167117,
	173015, 178913, 185467, 192020,
	198574, 205783, 212992, 220201,
	228065, 236585, 244449, 252969,
	262144, 271319, 281149, 290980,
	300810, 311951, 322437, 334234,
	346030, 357827, 370934, 384041,
	397148, 411566, 425984, 441057,
	456131, 472515, 488899, 506593,
	524288,
}

// Stages is the number of entries in the default table.
const Stages = len(defaultSteps)

// Table is an immutable, strictly increasing list of zoom scale factors
// indexed by zoom level. Index 0 is always 1.0x unless the table's Override
// replaces it for the current device context.
type Table struct {
	steps    []Fixed
	override Override
}

// Default returns the standard table combined with the override selected for
// this build.
func Default() *Table {
	return &Table{steps: defaultSteps[:], override: DefaultOverride()}
}

// NewTable validates values and returns a table. A nil override disables
// device specific corrections.
func NewTable(values []Fixed, override Override) (*Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidTable)
	}
	if values[0] != One {
		return nil, fmt.Errorf("%w: first step is %d, want %d", ErrInvalidTable, values[0], One)
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return nil, fmt.Errorf("%w: step %d (%d) does not increase on step %d (%d)", ErrInvalidTable, i, values[i], i-1, values[i-1])
		}
	}
	if override == nil {
		override = NoOverride{}
	}
	steps := make([]Fixed, len(values))
	copy(steps, values)
	return &Table{steps: steps, override: override}, nil
}

// WithOverride returns a copy of the table that resolves index 0 through o.
func (t *Table) WithOverride(o Override) *Table {
	if o == nil {
		o = NoOverride{}
	}
	return &Table{steps: t.steps, override: o}
}

func (t *Table) Len() int {
	return len(t.steps)
}

// Step returns the raw table entry, ignoring any override.
func (t *Table) Step(index int) (Fixed, error) {
	if index < 0 || index >= len(t.steps) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(t.steps))
	}
	return t.steps[index], nil
}

// Resolve returns the scale factor to program for index under ctx.
func (t *Table) Resolve(index int, ctx Context) (Fixed, error) {
	step, err := t.Step(index)
	if err != nil {
		return 0, err
	}
	if index != 0 {
		return step, nil
	}
	if floor, ok := t.override.ZoomFloor(ctx); ok {
		return floor, nil
	}
	return step, nil
}

// ContextSensitive reports whether index 0 may resolve differently across
// device contexts, in which case a context change must reprogram it.
func (t *Table) ContextSensitive() bool {
	_, none := t.override.(NoOverride)
	return !none
}

// Ratios returns the first n zoom ratios as percentages (100 == 1.0x).
func (t *Table) Ratios(n int) []int {
	if n > len(t.steps) || n <= 0 {
		n = len(t.steps)
	}
	ratios := make([]int, n)
	for i := range ratios {
		ratios[i] = t.steps[i].Percent()
	}
	return ratios
}

// Max returns the largest scale factor in the table.
func (t *Table) Max() Fixed {
	return t.steps[len(t.steps)-1]
}
