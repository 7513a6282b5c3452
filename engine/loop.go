package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
)

// Frontend is a pull-based display with non-blocking input
type Frontend interface {
	render.Surface

	// PollKeys drains key events received since the previous call
	PollKeys() []input.KeyEvent
}

// Run drives the controller at a fixed frame interval until quit or ctx ends
func Run(ctx context.Context, c *Controller, f Frontend, layout render.Layout, interval time.Duration) error {
	orchestrator := render.NewDefaultOrchestrator(f)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !c.Frame(f.PollKeys()) {
			return nil
		}
		orchestrator.RenderFrame(c.RenderContext(layout))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
