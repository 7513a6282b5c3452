package events

// MoveKind distinguishes translation from rotation
type MoveKind int

const (
	MoveTranslate MoveKind = iota
	MoveRotate
)

// MovePayload describes an accepted piece movement
type MovePayload struct {
	Kind   MoveKind
	DX, DY int
}

// LandPayload describes where a piece merged into the board
type LandPayload struct {
	X, Y int
}

// LinesClearedPayload carries the result of one clearing pass
type LinesClearedPayload struct {
	Count int
	Rows  []int // Board row indices before removal, top to bottom
}

// LevelPayload carries the new difficulty
type LevelPayload struct {
	Level        int
	FallInterval int
}

// SessionPayload summarizes a session at start or end
type SessionPayload struct {
	ID    string
	Score int
	Level int
	Lines int
}
