package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	surface   Surface
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing onto surface
func NewRenderOrchestrator(surface Surface) *RenderOrchestrator {
	return &RenderOrchestrator{
		surface:   surface,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the board, piece, HUD and game-over layers
func NewDefaultOrchestrator(surface Surface) *RenderOrchestrator {
	o := NewRenderOrchestrator(surface)
	o.Register(&BoardRenderer{}, PriorityGrid)
	o.Register(&PieceRenderer{}, PriorityEntities)
	o.Register(&HUDRenderer{}, PriorityUI)
	o.Register(&GameOverRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.surface.Clear(ctx.Layout.Background)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.surface)
	}

	o.surface.Show()
}
