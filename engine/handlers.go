package engine

import (
	"log"

	"github.com/lixenwraith/blockfall/events"
	"github.com/lixenwraith/blockfall/game"
)

// SessionLogger writes lifecycle milestones to the standard logger
type SessionLogger struct{}

func (h *SessionLogger) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventLevelUp,
		events.EventGameOver,
	}
}

func (h *SessionLogger) HandleEvent(s *game.Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSessionStarted:
		log.Printf("session %s started: board %dx%d", s.ID, s.Board.Rows(), s.Board.Cols())
	case events.EventLevelUp:
		if p, ok := ev.Payload.(*events.LevelPayload); ok {
			log.Printf("session %s level %d: fall interval %d ticks", s.ID, p.Level, p.FallInterval)
		}
	case events.EventGameOver:
		if p, ok := ev.Payload.(*events.SessionPayload); ok {
			log.Printf("session %s game over: score=%d level=%d lines=%d pieces=%d frame=%d",
				p.ID, p.Score, p.Level, p.Lines, s.Spawned, ev.Frame)
		}
	}
}
