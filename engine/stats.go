package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/blockfall/events"
	"github.com/lixenwraith/blockfall/game"
	"github.com/lixenwraith/blockfall/status"
)

// StatsRecorder accumulates gameplay counters across sessions
type StatsRecorder struct {
	reg *status.Registry

	sessions     *atomic.Int64
	gamesOver    *atomic.Int64
	moves        *atomic.Int64
	piecesLanded *atomic.Int64
	linesCleared *atomic.Int64
	clearPasses  *atomic.Int64
	lastSession  *status.AtomicString
}

// NewStatsRecorder caches counter pointers from reg
func NewStatsRecorder(reg *status.Registry) *StatsRecorder {
	return &StatsRecorder{
		reg:          reg,
		sessions:     reg.Ints.Get(status.Sessions),
		gamesOver:    reg.Ints.Get(status.GamesOver),
		moves:        reg.Ints.Get(status.Moves),
		piecesLanded: reg.Ints.Get(status.PiecesLanded),
		linesCleared: reg.Ints.Get(status.LinesCleared),
		clearPasses:  reg.Ints.Get(status.ClearPasses),
		lastSession:  reg.Strings.Get(status.LastSessionID),
	}
}

func (h *StatsRecorder) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventPieceMoved,
		events.EventPieceLanded,
		events.EventLinesCleared,
		events.EventLevelUp,
		events.EventGameOver,
	}
}

func (h *StatsRecorder) HandleEvent(s *game.Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSessionStarted:
		h.sessions.Add(1)
		h.lastSession.Store(s.ID)
	case events.EventPieceMoved:
		h.moves.Add(1)
	case events.EventPieceLanded:
		h.piecesLanded.Add(1)
	case events.EventLinesCleared:
		if p, ok := ev.Payload.(*events.LinesClearedPayload); ok {
			h.linesCleared.Add(int64(p.Count))
			h.clearPasses.Add(1)
		}
	case events.EventLevelUp:
		if p, ok := ev.Payload.(*events.LevelPayload); ok {
			h.reg.StoreMax(status.MaxLevel, int64(p.Level))
		}
	case events.EventGameOver:
		h.gamesOver.Add(1)
		if p, ok := ev.Payload.(*events.SessionPayload); ok {
			h.reg.StoreMax(status.BestScore, int64(p.Score))
		}
	}
}
