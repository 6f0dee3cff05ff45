package graph

// EventType identifies the kind of progress event.
type EventType string

const (
	// EventRunStart fires once when a run begins.
	EventRunStart EventType = "run_start"

	// EventStepStart fires before each worker executes.
	EventStepStart EventType = "step_start"

	// EventStepEnd fires after a worker's update has been merged.
	EventStepEnd EventType = "step_end"

	// EventRunEnd fires when the router resolves to Terminal.
	EventRunEnd EventType = "run_end"

	// EventRunError fires when the run aborts with an error.
	EventRunError EventType = "run_error"
)

// Event is emitted by the engine as a run progresses.
type Event struct {
	Type   EventType
	Worker WorkerName
	// Step is the 1-indexed step count within the run.
	Step int
	// Message carries the worker's log line for EventStepEnd, or the
	// error text for EventRunError.
	Message string
	// TaskID identifies the run.
	TaskID string
}

// Reporter fans progress events out to a buffered channel. Emission is
// non-blocking: if the consumer falls behind, events are dropped rather
// than stalling the run.
type Reporter struct {
	ch chan Event
}

// NewReporter creates a Reporter with a buffered channel of size 64.
func NewReporter() *Reporter {
	return &Reporter{ch: make(chan Event, 64)}
}

// Emit sends an event without blocking. A nil Reporter is a no-op.
func (r *Reporter) Emit(ev Event) {
	if r == nil {
		return
	}
	select {
	case r.ch <- ev:
	default:
		// Drop the event if the channel is full.
	}
}

// Events returns a read-only channel for consuming progress events.
func (r *Reporter) Events() <-chan Event {
	return r.ch
}

// Close closes the event channel. Callers should invoke this once the run
// that feeds the reporter has finished.
func (r *Reporter) Close() {
	close(r.ch)
}
