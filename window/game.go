// Package window is the ebiten frontend: a fixed-TPS game whose Update drives
// the controller and whose Draw renders through the shared orchestrator.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
)

// keyBindings lists watched keys in a fixed order
var keyBindings = []struct {
	ebiten ebiten.Key
	key    input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyR, input.KeyRestart},
}

// translateKeys maps this tick's key transitions to key events
func translateKeys(justPressed, justReleased func(ebiten.Key) bool, closing bool) []input.KeyEvent {
	var keys []input.KeyEvent
	if closing {
		keys = append(keys, input.Press(input.KeyClose))
	}
	for _, b := range keyBindings {
		if justPressed(b.ebiten) {
			keys = append(keys, input.Press(b.key))
		}
		if justReleased(b.ebiten) {
			keys = append(keys, input.Release(b.key))
		}
	}
	return keys
}

func pollKeyboard() []input.KeyEvent {
	return translateKeys(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased, ebiten.IsWindowBeingClosed())
}

// NewLayout maps grid cells to pixels with the score at the top-left
func NewLayout(cellSize int) render.Layout {
	return render.Layout{
		CellWidth:  cellSize,
		CellHeight: cellSize,
		CharWidth:  constants.DebugCharWidth,
		LineHeight: constants.DebugLineHeight,
		HUDX:       constants.ScoreTextX,
		HUDY:       constants.ScoreTextY,
		Background: core.RGBBlack,
		Foreground: core.RGBWhite,
	}
}

// Game implements ebiten.Game over a controller
type Game struct {
	ctrl    *engine.Controller
	layout  render.Layout
	surface *imageSurface
	orch    *render.RenderOrchestrator
	poll    func() []input.KeyEvent

	width, height int
}

// NewGame sizes the window to the board; the reference board yields 600x800
func NewGame(ctrl *engine.Controller, layout render.Layout) *Game {
	s := ctrl.Session()
	w, h := layout.BoardSize(s.Board.Rows(), s.Board.Cols())
	// Keep the reference window's spare strip below the board
	h += constants.WindowHeight - constants.BoardRows*constants.CellSize

	surface := &imageSurface{}
	return &Game{
		ctrl:    ctrl,
		layout:  layout,
		surface: surface,
		orch:    render.NewDefaultOrchestrator(surface),
		poll:    pollKeyboard,
		width:   w,
		height:  h,
	}
}

// Update advances the controller by one frame
func (g *Game) Update() error {
	if !g.ctrl.Frame(g.poll()) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current session onto screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.img = screen
	g.orch.RenderFrame(g.ctrl.RenderContext(g.layout))
	g.surface.img = nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Size returns the logical screen size
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until quit
func Run(ctrl *engine.Controller, layout render.Layout, fps int) error {
	g := NewGame(ctrl, layout)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetTPS(fps)
	// Close requests reach the controller as a key
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// imageSurface draws onto the frame's screen image
type imageSurface struct {
	img *ebiten.Image
}

func toRGBA(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (s *imageSurface) Clear(bg core.RGB) {
	s.img.Fill(toRGBA(bg))
}

func (s *imageSurface) FillRect(x, y, w, h int, c core.RGB) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), toRGBA(c), false)
}

// DrawText uses the debug font, which is always white
func (s *imageSurface) DrawText(x, y int, text string, _ core.RGB) {
	ebitenutil.DebugPrintAt(s.img, text, x, y)
}

// Show is a no-op; ebiten presents after Draw returns
func (s *imageSurface) Show() {}
