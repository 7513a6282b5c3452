package audio

import (
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/events"
	"github.com/lixenwraith/blockfall/game"
)

// AudioDispatcher turns game events into sound effects and music control
type AudioDispatcher struct {
	player Player
}

// NewAudioDispatcher creates a dispatcher driving player
func NewAudioDispatcher(player Player) *AudioDispatcher {
	return &AudioDispatcher{player: player}
}

func (d *AudioDispatcher) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventPieceMoved,
		events.EventPieceLanded,
		events.EventLinesCleared,
		events.EventGameOver,
		events.EventMusicStop,
	}
}

func (d *AudioDispatcher) HandleEvent(_ *game.Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSessionStarted:
		d.player.StartMusic()
	case events.EventPieceMoved:
		d.player.Play(core.SoundMove)
	case events.EventPieceLanded:
		d.player.Play(core.SoundBottomHit)
	case events.EventLinesCleared:
		d.player.Play(core.SoundLineClear)
	case events.EventGameOver:
		d.player.Play(core.SoundGameOver)
	case events.EventMusicStop:
		d.player.StopMusic()
	}
}
