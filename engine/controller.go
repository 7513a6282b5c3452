package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/events"
	"github.com/lixenwraith/blockfall/game"
	"github.com/lixenwraith/blockfall/input"
	"github.com/lixenwraith/blockfall/render"
)

// Config holds the controller tuning
type Config struct {
	Rows, Cols     int
	Rules          game.Rules
	RepeatInterval time.Duration
}

// DefaultConfig returns the reference tuning
func DefaultConfig() Config {
	return Config{
		Rows:           constants.BoardRows,
		Cols:           constants.BoardCols,
		Rules:          game.DefaultRules(),
		RepeatInterval: constants.RepeatInterval,
	}
}

// Controller owns the session and advances it one frame at a time
// All calls happen on the game loop goroutine
type Controller struct {
	cfg     Config
	clock   TimeProvider
	spawner game.Spawner

	keys   *input.KeyTable
	repeat *input.Repeater

	queue  *events.EventQueue
	router *events.Router[*game.Session]

	session  *game.Session
	sessions int
	frame    int64
	now      time.Time
	quit     bool
}

// NewController creates a controller and starts the first session
func NewController(cfg Config, clock TimeProvider, spawner game.Spawner) (*Controller, error) {
	queue := events.NewEventQueue()
	c := &Controller{
		cfg:     cfg,
		clock:   clock,
		spawner: spawner,
		keys:    input.DefaultKeyTable(),
		repeat:  input.NewRepeater(cfg.RepeatInterval),
		queue:   queue,
		router:  events.NewRouter[*game.Session](queue),
		now:     clock.Now(),
	}
	if err := c.newSession(); err != nil {
		return nil, err
	}
	return c, nil
}

// RegisterHandler attaches a collaborator to core events
// Events already pending, such as the first session start, reach it on the next dispatch
func (c *Controller) RegisterHandler(h events.Handler[*game.Session]) {
	c.router.Register(h)
}

// Session returns the live session
func (c *Controller) Session() *game.Session { return c.session }

// Sessions returns how many sessions have been started
func (c *Controller) Sessions() int { return c.sessions }

// FrameNumber returns the number of completed frames
func (c *Controller) FrameNumber() int64 { return c.frame }

// Running reports whether the player has not quit from the game-over screen
func (c *Controller) Running() bool { return !c.quit }

// RenderContext snapshots the live session for drawing
func (c *Controller) RenderContext(layout render.Layout) render.RenderContext {
	return render.NewRenderContext(c.session, layout)
}

// Push stamps and queues an event; the controller is the session's sink
func (c *Controller) Push(ev events.GameEvent) {
	ev.Frame = c.frame
	ev.Timestamp = c.now
	c.queue.Push(ev)
}

// Flush dispatches pending events without advancing the session
func (c *Controller) Flush() {
	c.router.DispatchAll(c.session)
}

// Frame advances one fixed tick: level, input, repeat, line clear, gravity
// Returns false once the player quits
func (c *Controller) Frame(keys []input.KeyEvent) bool {
	c.now = c.clock.Now()
	c.frame++

	if c.session.Playing() {
		c.playFrame(keys)
	} else {
		c.gameOverFrame(keys)
	}

	c.router.DispatchAll(c.session)
	return !c.quit
}

func (c *Controller) playFrame(keys []input.KeyEvent) {
	s := c.session

	s.UpdateLevel()

	for _, ev := range keys {
		c.handleKey(ev)
		if !s.Playing() {
			break
		}
	}

	if s.Playing() {
		c.applyRepeat()
	}
	if s.Playing() {
		s.ClearLines()
		s.Tick()
	}
	if !s.Playing() {
		c.repeat.Reset()
	}
}

func (c *Controller) handleKey(ev input.KeyEvent) {
	intent := c.keys.Resolve(ev.Key)
	if intent == input.IntentQuit {
		// Quit during play ends the session; the game-over screen handles the exit
		if ev.Action == input.ActionPress {
			c.session.End()
		}
		return
	}

	if d, ok := input.DirectionOf(intent); ok {
		if ev.Action == input.ActionRelease {
			c.repeat.Disarm(d)
			return
		}
		dx, dy := d.Delta()
		if c.session.Move(dx, dy) == game.MoveLanded {
			c.repeat.Disarm(d)
		} else {
			c.repeat.Arm(d, c.now)
		}
		return
	}

	if intent == input.IntentRotate && ev.Action == input.ActionPress {
		c.session.Rotate()
	}
}

func (c *Controller) applyRepeat() {
	for _, d := range c.repeat.Due(c.now) {
		dx, dy := d.Delta()
		switch c.session.Move(dx, dy) {
		case game.MoveMoved:
			c.repeat.Touch(d, c.now)
		case game.MoveLanded:
			c.repeat.Disarm(d)
		}
		if !c.session.Playing() {
			return
		}
	}
}

func (c *Controller) gameOverFrame(keys []input.KeyEvent) {
	for _, ev := range keys {
		if ev.Action != input.ActionPress {
			continue
		}
		switch c.keys.Resolve(ev.Key) {
		case input.IntentQuit:
			c.requestQuit()
			return
		case input.IntentRestart:
			// Session construction only fails on bad dimensions, already validated
			if err := c.newSession(); err != nil {
				c.requestQuit()
			}
			return
		}
	}
}

// Music already stopped when the session ended
func (c *Controller) requestQuit() {
	c.quit = true
}

func (c *Controller) newSession() error {
	s, err := game.NewSession(uuid.NewString(), c.cfg.Rows, c.cfg.Cols, c.cfg.Rules, c.spawner, c)
	if err != nil {
		return err
	}
	c.session = s
	c.sessions++
	c.repeat.Reset()
	return nil
}
