package audio

import (
	"errors"

	"github.com/lixenwraith/blockfall/core"
)

// Sentinel errors
var (
	ErrAudioDisabled     = errors.New("audio disabled by configuration")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Player is the playback surface the event dispatcher drives
type Player interface {
	Play(st core.SoundType) bool
	StartMusic() bool
	StopMusic()
}
