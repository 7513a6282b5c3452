package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/events"
	"github.com/lixenwraith/blockfall/game"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequenceSpawner struct {
	kinds []game.Kind
	cols  int
	i     int
}

func (s *sequenceSpawner) Generate() game.Piece {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return game.SpawnPiece(k, core.RGB{R: 100, G: 150, B: 200}, s.cols)
}

type recordingHandler struct {
	seen []events.EventType
}

func (h *recordingHandler) EventTypes() []events.EventType {
	types := make([]events.EventType, 0)
	for t := events.EventSessionStarted; t <= events.EventMusicStop; t++ {
		types = append(types, t)
	}
	return types
}

func (h *recordingHandler) HandleEvent(_ *game.Session, ev events.GameEvent) {
	h.seen = append(h.seen, ev.Type)
}

func (h *recordingHandler) count(t events.EventType) int {
	n := 0
	for _, s := range h.seen {
		if s == t {
			n++
		}
	}
	return n
}

type harness struct {
	c       *Controller
	clock   *MockTimeProvider
	handler *recordingHandler
}

func newHarness(t *testing.T, rows, cols int, kinds ...game.Kind) *harness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c, err := NewController(cfg, clock, &sequenceSpawner{kinds: kinds, cols: cols})
	require.NoError(t, err)
	h := &recordingHandler{}
	c.RegisterHandler(h)
	return &harness{c: c, clock: clock, handler: h}
}

// step advances the clock one frame and runs the controller
func (h *harness) step(keys ...input.KeyEvent) bool {
	h.clock.Advance(constants.FrameUpdateInterval)
	return h.c.Frame(keys)
}

func TestControllerFirstFrameDispatchesSessionStart(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	assert.True(t, h.step())
	assert.Equal(t, 1, h.handler.count(events.EventSessionStarted))
	assert.Equal(t, int64(1), h.c.FrameNumber())
}

func TestControllerQuitShowsGameOverFirst(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	s := h.c.Session()

	assert.True(t, h.step(input.Press(input.KeyEscape), input.Press(input.KeyLeft)))
	assert.True(t, h.c.Running())
	assert.False(t, s.Playing(), "quit during play moves to the game-over screen")
	assert.Equal(t, 8, s.Piece.X, "keys after quit are ignored")
	assert.Equal(t, 1, h.handler.count(events.EventMusicStop))
	assert.Zero(t, h.handler.count(events.EventGameOver), "quit plays no game-over cue")

	rc := h.c.RenderContext(render.Layout{CellWidth: 1, CellHeight: 1})
	assert.True(t, rc.GameOver)

	assert.False(t, h.step(input.Press(input.KeyEscape)))
	assert.False(t, h.c.Running())
	assert.Equal(t, 1, h.handler.count(events.EventMusicStop))
}

func TestControllerWindowClose(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	assert.True(t, h.step(input.Press(input.KeyClose)))
	assert.False(t, h.c.Session().Playing())
	assert.False(t, h.step(input.Press(input.KeyClose)))
}

func TestControllerRestartAfterQuit(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	h.step(input.Press(input.KeyEscape))
	assert.True(t, h.step(input.Press(input.KeyEnter)))
	assert.True(t, h.c.Session().Playing())
	assert.Equal(t, 2, h.c.Sessions())
}

func TestControllerMoveAndRepeat(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	s := h.c.Session()

	h.step(input.Press(input.KeyLeft))
	assert.Equal(t, 7, s.Piece.X)

	// Held: the repeat timer moves again once the interval has elapsed
	h.step()
	assert.Equal(t, 6, s.Piece.X)
	h.step()
	assert.Equal(t, 5, s.Piece.X)

	h.step(input.Release(input.KeyLeft))
	h.step()
	assert.Equal(t, 5, s.Piece.X)
}

func TestControllerBlockedMoveArmsRepeat(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	s := h.c.Session()
	s.Piece = s.Piece.Moved(-8, 0)

	h.step(input.Press(input.KeyLeft))
	assert.Equal(t, 0, s.Piece.X)
	assert.True(t, h.c.repeat.Armed(input.DirLeft))
}

func TestControllerRotate(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	h.step(input.Press(input.KeyUp))
	assert.Equal(t, 1, h.c.Session().Piece.Rotation)
	assert.Equal(t, 1, h.handler.count(events.EventPieceMoved))

	h.step(input.Release(input.KeyUp))
	assert.Equal(t, 1, h.c.Session().Piece.Rotation)
}

func TestControllerGravity(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	for i := 1; i < constants.BaseFallInterval; i++ {
		h.step()
	}
	assert.Equal(t, 0, h.c.Session().Piece.Y)
	h.step()
	assert.Equal(t, 1, h.c.Session().Piece.Y)
	assert.Zero(t, h.c.Session().FallCounter)
}

func TestControllerLandClearAndScore(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI, game.KindO)
	s := h.c.Session()
	for c := 0; c < 20; c++ {
		if c < 8 || c > 11 {
			s.Board.Set(25, c, core.RGB{R: 60, G: 60, B: 60})
		}
	}
	s.Piece = s.Piece.Moved(0, 25)

	h.step(input.Press(input.KeyDown))
	assert.Equal(t, game.KindO, s.Piece.Kind, "landing spawns immediately")
	assert.Equal(t, 10, s.Score)
	assert.Zero(t, s.Board.FilledCount())
	assert.False(t, h.c.repeat.Armed(input.DirDown), "landing disarms repeat")
	assert.Equal(t, 1, h.handler.count(events.EventPieceLanded))
	assert.Equal(t, 1, h.handler.count(events.EventLinesCleared))
}

func TestControllerLevelFromScore(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	h.c.Session().Score = 2000
	h.step()
	assert.Equal(t, 2, h.c.Session().Level)
	assert.Equal(t, constants.BaseFallInterval-2, h.c.Session().FallInterval())
}

func TestControllerGameOverAndRestart(t *testing.T) {
	h := newHarness(t, 2, 4, game.KindO)
	first := h.c.Session()

	assert.True(t, h.step(input.Press(input.KeyDown)))
	require.False(t, first.Playing())
	assert.Equal(t, 1, h.handler.count(events.EventGameOver))
	assert.Equal(t, 1, h.handler.count(events.EventMusicStop))

	// Movement is ignored on the game-over screen
	assert.True(t, h.step(input.Press(input.KeyLeft), input.Press(input.KeyUp)))
	assert.Same(t, first, h.c.Session())

	assert.True(t, h.step(input.Press(input.KeyEnter)))
	second := h.c.Session()
	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.Playing())
	assert.Zero(t, second.Score)
	assert.Equal(t, 2, h.c.Sessions())
	assert.Equal(t, 2, h.handler.count(events.EventSessionStarted))
}

func TestControllerQuitFromGameOver(t *testing.T) {
	h := newHarness(t, 2, 4, game.KindO)
	h.step(input.Press(input.KeyDown))
	require.False(t, h.c.Session().Playing())

	assert.True(t, h.step(input.Release(input.KeyEscape)))
	assert.False(t, h.step(input.Press(input.KeyEscape)))
}

func TestControllerEventsStamped(t *testing.T) {
	h := newHarness(t, 26, 20, game.KindI)
	h.step()
	h.step(input.Press(input.KeyRight))
	// The queue is drained each frame; stamp a fresh event and inspect it
	h.c.Push(events.GameEvent{Type: events.EventMusicStop})
	pending := h.c.queue.Consume()
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].Frame)
	assert.Equal(t, h.clock.Now(), pending[0].Timestamp)
}
