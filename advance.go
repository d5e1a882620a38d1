package zoom

import (
	"errors"

	"github.com/kevmo314/go-zoom/pkg/steps"
)

type notification struct {
	index int
	final bool
}

// Advance performs one animation tick. The preview pipeline calls it once per
// frame with the current device context.
//
// In order of priority, a tick either finishes an interrupted smooth zoom with
// one last step, moves one step toward the target (or snaps to it when no
// smooth zoom is running), or leaves the smooth zoom state once the target is
// reached. Finally, an immediate zoom that arrived while another was being
// applied is reapplied.
//
// Subscribers are notified after the controller lock is released, so they
// may call back into the controller.
func (c *Controller) Advance(ctx steps.Context) error {
	c.mu.Lock()
	notes, err := c.advance(ctx)
	c.mu.Unlock()

	for _, n := range notes {
		c.subs.notify(c.logger, n.index, n.final)
	}
	return err
}

// advance runs the tick state machine and returns the notifications to send.
// Must be called with c.mu held.
func (c *Controller) advance(ctx steps.Context) ([]notification, error) {
	active := c.state.IsSmoothZoomActive()

	var (
		notes []notification
		err   error
	)
	switch {
	case c.returnToParameter:
		c.current += c.step
		c.target = c.current
		c.returnToParameter = false
		err = c.apply(c.current, ctx, false)
		c.logger.Debug("zoom: [Stopped] smooth zoom notify", "current", c.current)
		notes = append(notes, notification{c.current, true})

	case c.current != c.target:
		if active {
			c.step = sign(c.target - c.current)
			c.current += c.step
		} else {
			c.current = c.target
		}

		err = c.apply(c.current, ctx, false)

		if active {
			if c.current == c.target {
				c.logger.Debug("zoom: [Goal Reached] smooth zoom notify", "current", c.current, "target", c.target)
				// on a failed apply the adapter stays in smooth zoom and the
				// next tick leaves it
				if err == nil {
					err = c.leaveSmoothZoom()
				}
				c.returnToParameter = false
				notes = append(notes, notification{c.current, true})
			} else {
				c.logger.Debug("zoom: [Advancing] smooth zoom notify", "current", c.current, "target", c.target)
				notes = append(notes, notification{c.current, false})
			}
		}

	case active:
		err = c.leaveSmoothZoom()
	}

	if c.pendingUpdate {
		if updateErr := c.apply(c.target, ctx, true); updateErr != nil && err == nil {
			err = updateErr
		}
		c.pendingUpdate = false
		c.updating = true
	} else {
		c.updating = false
	}

	return notes, err
}

func (c *Controller) leaveSmoothZoom() error {
	result := stopSmoothZoom(c.state)
	if result.Outcome != TransitionCommitted {
		c.logger.Warn("zoom: leaving smooth zoom state failed",
			"outcome", result.Outcome,
			"error", errors.Join(result.RequestErr, result.CommitErr, result.RollbackErr))
	}
	return result.Err()
}
