package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/input"
)

// Screen adapts a tcell screen to the engine frontend contract
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	bg     tcell.Color

	finiOnce sync.Once
}

// New opens the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and starts the event pump
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.HideCursor()

	t := &Screen{
		screen: s,
		events: make(chan tcell.Event, constants.TerminalEventBuffer),
		done:   make(chan struct{}),
		bg:     tcell.ColorBlack,
	}
	core.Go(t.pump)
	return t, nil
}

// pump forwards tcell events until the screen is finalized
func (t *Screen) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollKeys drains pending events without blocking
func (t *Screen) PollKeys() []input.KeyEvent {
	var keys []input.KeyEvent
	for {
		select {
		case ev := <-t.events:
			keys = t.handleEvent(keys, ev)
		default:
			return keys
		}
	}
}

func (t *Screen) handleEvent(keys []input.KeyEvent, ev tcell.Event) []input.KeyEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k := mapKey(ev); k != input.KeyNone {
			keys = append(keys, input.Press(k), input.Release(k))
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return keys
}

// mapKey translates a tcell key to a frontend-independent key
func mapKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyCtrlC:
		return input.KeyClose
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyRune:
		switch {
		case ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C'):
			return input.KeyClose
		case ev.Rune() == 'r' || ev.Rune() == 'R':
			return input.KeyRestart
		}
	}
	return input.KeyNone
}

// Size returns the terminal dimensions in cells
func (t *Screen) Size() (int, int) {
	return t.screen.Size()
}

// Fini restores the terminal; safe to call more than once
func (t *Screen) Fini() {
	t.finiOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Clear fills the screen with bg
func (t *Screen) Clear(bg core.RGB) {
	t.bg = toColor(bg)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
}

// FillRect paints w x h cells starting at (x, y)
func (t *Screen) FillRect(x, y, w, h int, c core.RGB) {
	style := tcell.StyleDefault.Background(toColor(c))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText writes text left to right from (x, y) over the cleared background
func (t *Screen) DrawText(x, y int, text string, c core.RGB) {
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(t.bg)
	col := x
	for _, r := range text {
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// Show flushes the frame to the terminal
func (t *Screen) Show() {
	t.screen.Show()
}
