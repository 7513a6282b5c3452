package input

import "time"

// Repeater tracks continuous-repeat state per direction
// A direction re-triggers once its interval has elapsed since its last successful move
type Repeater struct {
	interval time.Duration
	armed    [DirectionCount]bool
	last     [DirectionCount]time.Time
}

// NewRepeater creates a repeater with all directions disarmed
func NewRepeater(interval time.Duration) *Repeater {
	return &Repeater{interval: interval}
}

// Arm enables repeat for d, measuring from now
func (r *Repeater) Arm(d Direction, now time.Time) {
	r.armed[d] = true
	r.last[d] = now
}

// Disarm stops repeat for d
func (r *Repeater) Disarm(d Direction) {
	r.armed[d] = false
}

// Reset disarms every direction
func (r *Repeater) Reset() {
	r.armed = [DirectionCount]bool{}
}

// Armed reports whether d is repeating
func (r *Repeater) Armed(d Direction) bool {
	return r.armed[d]
}

// Touch records a successful move in d at now
func (r *Repeater) Touch(d Direction, now time.Time) {
	r.last[d] = now
}

// Due returns the armed directions whose interval has elapsed, in Direction order
func (r *Repeater) Due(now time.Time) []Direction {
	var due []Direction
	for d := Direction(0); d < DirectionCount; d++ {
		if r.armed[d] && now.Sub(r.last[d]) > r.interval {
			due = append(due, d)
		}
	}
	return due
}
