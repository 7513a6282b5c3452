// Package status holds process-wide gameplay counters
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Counter names
const (
	Sessions      = "sessions"
	GamesOver     = "games_over"
	Moves         = "moves"
	PiecesLanded  = "pieces_landed"
	LinesCleared  = "lines_cleared"
	ClearPasses   = "clear_passes"
	MaxLevel      = "max_level"
	BestScore     = "best_score"
	LastSessionID = "last_session"
)

// Registry is the central metrics facade
// Handlers cache pointers at construction; event dispatch writes the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// StoreMax raises the named counter to v if v is larger
func (r *Registry) StoreMax(key string, v int64) {
	c := r.Ints.Get(key)
	for {
		cur := c.Load()
		if v <= cur || c.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Summary formats every metric as key=value in sorted order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
