package input

// Key is a frontend-independent key identity
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeyEscape
	KeyClose // Window close button, Ctrl+C
	KeyEnter
	KeyRestart // 'r'
)

func (k Key) String() string {
	names := [...]string{"none", "left", "right", "down", "up", "escape", "close", "enter", "restart"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Action distinguishes key-down from key-up
type Action uint8

const (
	ActionPress Action = iota
	ActionRelease
)

// KeyEvent is one discrete key transition delivered by a frontend
type KeyEvent struct {
	Key    Key
	Action Action
}

// Press and Release build key events
func Press(k Key) KeyEvent   { return KeyEvent{Key: k, Action: ActionPress} }
func Release(k Key) KeyEvent { return KeyEvent{Key: k, Action: ActionRelease} }

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // Escape, window close
	IntentRestart // Enter, 'r' on the game-over screen

	// Piece control
	IntentMoveLeft
	IntentMoveRight
	IntentMoveDown
	IntentRotate
)

func (t IntentType) String() string {
	names := [...]string{"none", "quit", "restart", "move_left", "move_right", "move_down", "rotate"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Direction is a repeatable translation
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirDown
	DirectionCount
)

// Delta returns the grid offset for the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	return [...]string{"left", "right", "down"}[d]
}

// DirectionOf maps a movement intent to its direction
func DirectionOf(t IntentType) (Direction, bool) {
	switch t {
	case IntentMoveLeft:
		return DirLeft, true
	case IntentMoveRight:
		return DirRight, true
	case IntentMoveDown:
		return DirDown, true
	}
	return 0, false
}
