// Package agui converts graph run events to AG-UI protocol events for
// streaming to front-end clients.
package agui

import (
	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/mwhitby/boardroom/graph"
)

// RoleAssistant is the AG-UI role attached to worker messages.
const RoleAssistant = "assistant"

// Mapper converts graph events to AG-UI events.
//
// Create a new Mapper for each run using NewMapper. The Mapper is not
// safe for concurrent use - each goroutine should have its own Mapper.
type Mapper struct {
	threadID string
	runID    string
}

// NewMapper creates a new Mapper for a single run.
// The threadID and runID are used in lifecycle events (RUN_STARTED, RUN_FINISHED).
func NewMapper(threadID, runID string) *Mapper {
	if threadID == "" {
		threadID = events.GenerateThreadID()
	}
	if runID == "" {
		runID = events.GenerateRunID()
	}
	return &Mapper{
		threadID: threadID,
		runID:    runID,
	}
}

// ThreadID returns the thread ID for this mapper.
func (m *Mapper) ThreadID() string {
	return m.threadID
}

// RunID returns the run ID for this mapper.
func (m *Mapper) RunID() string {
	return m.runID
}

// RunError returns a RUN_ERROR event.
func (m *Mapper) RunError(err error) events.Event {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return events.NewRunErrorEvent(msg)
}

// MapEvent converts one graph event to its AG-UI equivalents. A worker
// step that produced a log message expands into a text-message triple
// before the step-finished event; everything else maps 1:1. Returns nil
// for events with no AG-UI equivalent.
func (m *Mapper) MapEvent(e graph.Event) []events.Event {
	switch e.Type {
	case graph.EventRunStart:
		return []events.Event{events.NewRunStartedEvent(m.threadID, m.runID)}
	case graph.EventRunEnd:
		return []events.Event{events.NewRunFinishedEvent(m.threadID, m.runID)}
	case graph.EventRunError:
		msg := e.Message
		if msg == "" {
			msg = "unknown error"
		}
		return []events.Event{events.NewRunErrorEvent(msg)}
	case graph.EventStepStart:
		return []events.Event{events.NewStepStartedEvent(string(e.Worker))}
	case graph.EventStepEnd:
		out := make([]events.Event, 0, 4)
		if e.Message != "" {
			messageID := events.GenerateMessageID()
			out = append(out,
				events.NewTextMessageStartEvent(messageID, events.WithRole(RoleAssistant)),
				events.NewTextMessageContentEvent(messageID, e.Message),
				events.NewTextMessageEndEvent(messageID),
			)
		}
		return append(out, events.NewStepFinishedEvent(string(e.Worker)))
	default:
		return nil
	}
}
