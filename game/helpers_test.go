package game

import (
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/events"
)

var testColor = core.RGB{R: 200, G: 100, B: 50}

// sequenceSpawner cycles through a fixed kind list
type sequenceSpawner struct {
	kinds []Kind
	cols  int
	i     int
}

func (s *sequenceSpawner) Generate() Piece {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return SpawnPiece(k, testColor, s.cols)
}

// recordingSink keeps every pushed event
type recordingSink struct {
	events []events.GameEvent
}

func (r *recordingSink) Push(ev events.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingSink) types() []events.EventType {
	out := make([]events.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recordingSink) count(t events.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func fillRow(b *Board, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := 0; c < b.Cols(); c++ {
		if !skip[c] {
			b.Set(row, c, testColor)
		}
	}
}

func newSession(rows, cols int, kinds ...Kind) (*Session, *recordingSink) {
	sink := &recordingSink{}
	s, err := NewSession("test", rows, cols, DefaultRules(), &sequenceSpawner{kinds: kinds, cols: cols}, sink)
	if err != nil {
		panic(err)
	}
	return s, sink
}
