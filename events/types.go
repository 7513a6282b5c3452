package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted marks a fresh board and first spawn
	// Trigger: Session creation, restart from game over
	// Consumer: AudioDispatcher (music start), SessionLogger | Payload: *SessionPayload
	EventSessionStarted EventType = iota

	// EventPieceMoved signals an accepted translation or rotation
	// Trigger: Session.Move, Session.Rotate
	// Consumer: AudioDispatcher | Payload: *MovePayload
	EventPieceMoved

	// EventPieceLanded signals a piece merged into the board
	// Trigger: blocked downward move | Payload: *LandPayload
	EventPieceLanded

	// EventLinesCleared signals one clearing pass removed rows
	// Trigger: Session.ClearLines with count > 0
	// Consumer: AudioDispatcher | Payload: *LinesClearedPayload
	EventLinesCleared

	// EventLevelUp signals the score crossed a level threshold
	// Payload: *LevelPayload
	EventLevelUp

	// EventGameOver signals the freshly spawned piece overlaps the stack
	// Consumer: AudioDispatcher (sound + music stop), SessionLogger | Payload: *SessionPayload
	EventGameOver

	// EventMusicStop signals background music should end
	// Trigger: game over, quit | Payload: nil
	EventMusicStop

	eventTypeCount
)

func (t EventType) String() string {
	names := [...]string{
		"session_started", "piece_moved", "piece_landed", "lines_cleared",
		"level_up", "game_over", "music_stop",
	}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// GameEvent is a single notification emitted by the game core
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}

// Sink accepts events from the game core
// Implementations must not call back into the emitter
type Sink interface {
	Push(event GameEvent)
}
