package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundMove      SoundType = iota // Piece translated or rotated
	SoundLineClear                  // One or more rows removed
	SoundBottomHit                  // Piece landed
	SoundGameOver                   // Spawn blocked
	SoundTypeCount
)

func (s SoundType) String() string {
	names := [...]string{"move", "line_clear", "bottom_hit", "game_over"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// ParseSoundType resolves a config key to its sound type
func ParseSoundType(name string) (SoundType, bool) {
	for s := SoundType(0); s < SoundTypeCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
