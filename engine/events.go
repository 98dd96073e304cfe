package engine

import (
	"sync"
	"time"
)

// Stage Event System
//
// Timers and external inputs never touch render state directly. They push events
// onto the EventQueue from any goroutine, and the stage drains the queue once at the
// start of each frame on the render goroutine.
//
// Event Flow Pattern:
//  1. Producer (timer callback, input handler) pushes: queue.Push(Event{...})
//  2. Event stored in fixed ring buffer (capacity: EventQueueCapacity)
//  3. Stage drains with ConsumeInto(buf[:0]) before any component update
//  4. Stage applies each event as the single writer of boot and selection state

// EventType identifies the meaning of an Event
type EventType uint8

const (
	// EventBootComplete ends the boot phase
	//
	// Triggered When:
	//   - Boot timer fires BootDuration after mount
	//
	// Payload: none
	EventBootComplete EventType = iota

	// EventBootProgress advances the boot progress counter
	//
	// Triggered When:
	//   - Progress ticker fires, independent of the boot timer
	//
	// Payload: X = progress step
	EventBootProgress

	// EventSelectPanel requests focus on a panel
	//
	// Payload: Index = panel index, re-validated on consumption
	EventSelectPanel

	// EventHoverMarker sets or clears (-1) the hovered floor marker
	//
	// Payload: Index = marker index
	EventHoverMarker

	// EventOrbit carries a pointer drag for free orbit, ignored while booting
	//
	// Payload: X = azimuth delta, Y = polar delta (radians)
	EventOrbit
)

func (t EventType) String() string {
	switch t {
	case EventBootComplete:
		return "BootComplete"
	case EventBootProgress:
		return "BootProgress"
	case EventSelectPanel:
		return "SelectPanel"
	case EventHoverMarker:
		return "HoverMarker"
	case EventOrbit:
		return "Orbit"
	default:
		return "Unknown"
	}
}

// Event is a value type so pushing never allocates
type Event struct {
	Type      EventType
	Index     int
	X, Y      float64
	Timestamp time.Time
}

// EventQueueCapacity bounds pending events between two frames
const EventQueueCapacity = 256

// EventQueue is a fixed ring buffer for stage events
//
// Thread-Safety:
//   - Push: safe for multiple concurrent producers
//   - ConsumeInto: single consumer (the frame loop)
//
// Overflow Behavior:
//   - When full, the oldest event is overwritten
type EventQueue struct {
	mu     sync.Mutex
	events [EventQueueCapacity]Event
	head   uint64 // next read
	tail   uint64 // next write
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event, overwriting the oldest one if the ring is full
func (eq *EventQueue) Push(event Event) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	eq.events[eq.tail%EventQueueCapacity] = event
	eq.tail++
	if eq.tail-eq.head > EventQueueCapacity {
		eq.head = eq.tail - EventQueueCapacity
	}
}

// ConsumeInto appends all pending events to dst in FIFO order and marks them consumed
// Passing a reused dst[:0] keeps the frame loop allocation free
func (eq *EventQueue) ConsumeInto(dst []Event) []Event {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	for i := eq.head; i < eq.tail; i++ {
		dst = append(dst, eq.events[i%EventQueueCapacity])
	}
	eq.head = eq.tail
	return dst
}

// Len returns the number of pending events (snapshot)
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return int(eq.tail - eq.head)
}
