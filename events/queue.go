package events

// QueueSize bounds pending events between two dispatches
const QueueSize = 256

const queueMask = QueueSize - 1

// EventQueue is a fixed-size FIFO ring buffer for game events
// Single producer and single consumer on the game loop goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [QueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest one if the ring is full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&queueMask] = event
	eq.tail++
	if eq.tail-eq.head > QueueSize {
		eq.head = eq.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & queueMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
