package render

import "github.com/lixenwraith/blockfall/core"

// Surface is the drawing collaborator a frontend provides
// Coordinates are surface units (pixels for a window, cells for a terminal)
type Surface interface {
	Clear(bg core.RGB)
	FillRect(x, y, w, h int, c core.RGB)
	DrawText(x, y int, text string, c core.RGB)
	Show()
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
