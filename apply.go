package zoom

import (
	"fmt"

	"github.com/kevmo314/go-zoom/pkg/steps"
)

// apply programs index on the hardware. Unless force is set, it skips the
// call when index is already applied and, for a context sensitive index 0,
// the device context has not changed since. Must be called with c.mu held.
func (c *Controller) apply(index int, ctx steps.Context, force bool) error {
	if c.component == ComponentStateInvalid {
		c.logger.Error("zoom: component is in invalid state", "index", index)
		return ErrInvalidHardwareState
	}
	if err := c.inRange(index); err != nil {
		c.logger.Error("zoom: index out of range", "index", index)
		return err
	}

	if !force && index == c.applied && !c.needsReapply(index, ctx) {
		return nil
	}

	scale, err := c.table.Resolve(index, ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	if err := c.applier.ApplyZoomScale(scale, scale); err != nil {
		c.logger.Error("zoom: error while applying digital zoom", "index", index, "scale", scale, "error", err)
		return fmt.Errorf("%w: index %d: %w", ErrApplyFailed, index, err)
	}

	c.logger.Debug("zoom: digital zoom applied", "index", index, "scale", scale)
	c.applied = index
	c.appliedCtx = ctx
	return nil
}

func (c *Controller) needsReapply(index int, ctx steps.Context) bool {
	return index == 0 && c.table.ContextSensitive() && ctx.Differs(c.appliedCtx)
}
