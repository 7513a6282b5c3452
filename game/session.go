package game

import (
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/events"
)

// State is the session lifecycle
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// MoveResult reports the outcome of Session.Move
type MoveResult int

const (
	MoveBlocked MoveResult = iota // No state change
	MoveMoved                     // Anchor updated
	MoveLanded                    // Piece merged into the board, next piece spawned
)

func (r MoveResult) String() string {
	switch r {
	case MoveMoved:
		return "moved"
	case MoveLanded:
		return "landed"
	default:
		return "blocked"
	}
}

// Rules are the tunable scoring and gravity parameters
type Rules struct {
	PointsPerLine    int
	LevelScoreStep   int
	BaseFallInterval int
	MinFallInterval  int
}

// DefaultRules returns the reference tuning
func DefaultRules() Rules {
	return Rules{
		PointsPerLine:    constants.PointsPerLine,
		LevelScoreStep:   constants.LevelScoreStep,
		BaseFallInterval: constants.BaseFallInterval,
		MinFallInterval:  constants.MinFallInterval,
	}
}

// Session is the full mutable game state of one play-through
// Score and Level only grow; a new Session starts from zero
type Session struct {
	ID    string
	Board *Board
	Piece Piece

	Score       int
	Level       int
	Lines       int
	Spawned     int
	FallCounter int

	state   State
	rules   Rules
	spawner Spawner
	sink    events.Sink
}

// NewSession creates an empty board and spawns the first piece
// sink may be nil when no collaborator listens
func NewSession(id string, rows, cols int, rules Rules, spawner Spawner, sink events.Sink) (*Session, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:      id,
		Board:   board,
		rules:   rules,
		spawner: spawner,
		sink:    sink,
	}
	s.emit(events.EventSessionStarted, s.summary())
	s.spawn()
	return s, nil
}

// State returns the lifecycle state
func (s *Session) State() State { return s.state }

// Playing reports whether the session still accepts moves
func (s *Session) Playing() bool { return s.state == StatePlaying }

// Rules returns the session tuning
func (s *Session) Rules() Rules { return s.rules }

// Move translates the live piece by (dx, dy)
// A blocked downward move lands the piece and spawns the next one
func (s *Session) Move(dx, dy int) MoveResult {
	if s.state != StatePlaying {
		return MoveBlocked
	}
	if CanMove(s.Piece, s.Board, dx, dy) {
		s.Piece = s.Piece.Moved(dx, dy)
		s.emit(events.EventPieceMoved, &events.MovePayload{Kind: events.MoveTranslate, DX: dx, DY: dy})
		return MoveMoved
	}
	if dy == 1 {
		s.land()
		return MoveLanded
	}
	return MoveBlocked
}

// Rotate turns the live piece a quarter clockwise when the result fits
func (s *Session) Rotate() bool {
	if s.state != StatePlaying {
		return false
	}
	p, ok := TryRotate(s.Piece, s.Board)
	if !ok {
		return false
	}
	s.Piece = p
	s.emit(events.EventPieceMoved, &events.MovePayload{Kind: events.MoveRotate})
	return true
}

// ClearLines removes full rows and scores PointsPerLine for each
func (s *Session) ClearLines() int {
	rows := s.Board.clearRows(s.Board.FullRows())
	n := len(rows)
	if n == 0 {
		return 0
	}
	s.Lines += n
	s.Score += n * s.rules.PointsPerLine
	s.emit(events.EventLinesCleared, &events.LinesClearedPayload{Count: n, Rows: rows})
	return n
}

// UpdateLevel raises the level once per LevelScoreStep threshold crossed
func (s *Session) UpdateLevel() bool {
	if s.rules.LevelScoreStep <= 0 {
		return false
	}
	raised := false
	for s.Score >= (s.Level+1)*s.rules.LevelScoreStep {
		s.Level++
		raised = true
		s.emit(events.EventLevelUp, &events.LevelPayload{Level: s.Level, FallInterval: s.FallInterval()})
	}
	return raised
}

// FallInterval is the number of ticks between automatic drops at the current level
func (s *Session) FallInterval() int {
	return max(s.rules.MinFallInterval, s.rules.BaseFallInterval-s.Level)
}

// Tick advances gravity by one frame
// Returns the drop result and whether a drop was attempted
func (s *Session) Tick() (MoveResult, bool) {
	if s.state != StatePlaying {
		return MoveBlocked, false
	}
	s.FallCounter++
	if s.FallCounter < s.FallInterval() {
		return MoveBlocked, false
	}
	result := s.Move(0, 1)
	s.FallCounter = 0
	return result, true
}

// End stops a live session on player quit
// Music stops but the game-over cue is not emitted
func (s *Session) End() bool {
	if s.state != StatePlaying {
		return false
	}
	s.state = StateGameOver
	s.emit(events.EventMusicStop, nil)
	return true
}

func (s *Session) land() {
	s.Board.Place(s.Piece)
	s.emit(events.EventPieceLanded, &events.LandPayload{X: s.Piece.X, Y: s.Piece.Y})
	s.spawn()
}

// spawn replaces the live piece; an invalid spawn ends the session
func (s *Session) spawn() {
	s.Piece = s.spawner.Generate()
	s.Spawned++
	s.FallCounter = 0
	if CanMove(s.Piece, s.Board, 0, 0) {
		return
	}
	s.state = StateGameOver
	s.emit(events.EventGameOver, s.summary())
	s.emit(events.EventMusicStop, nil)
}

func (s *Session) summary() *events.SessionPayload {
	return &events.SessionPayload{ID: s.ID, Score: s.Score, Level: s.Level, Lines: s.Lines}
}

func (s *Session) emit(t events.EventType, payload any) {
	if s.sink == nil {
		return
	}
	s.sink.Push(events.GameEvent{Type: t, Payload: payload})
}
