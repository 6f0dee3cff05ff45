package graph

import (
	ai "github.com/mwhitby/boardroom"
)

// State is the shared record threaded through a run. It is owned by the
// Engine for the lifetime of the run: workers receive a snapshot (value
// copy) and return a partial Update, never a reference to the live state.
type State struct {
	// TaskID uniquely identifies this run.
	TaskID string `json:"taskId"`

	// CurrentTask is the user-supplied task description.
	// Set once at run start and never modified.
	CurrentTask string `json:"currentTask"`

	// Messages is the append-only run log. Every worker appends at least
	// one entry, so the log length strictly increases each step.
	Messages []ai.Message `json:"messages"`

	// NextWorker is the routing hint set by the most recent worker.
	NextWorker WorkerName `json:"nextWorker"`

	ResearchData   string `json:"researchData"`
	MarketData     string `json:"marketData"`
	MergedResearch string `json:"mergedResearch"`
	TechnicalText  string `json:"technicalText"`
	SummaryText    string `json:"summaryText"`
	FinalReport    string `json:"finalReport"`

	// TaskComplete is latched by the compile step. Once true it is never
	// reset, and the router resolves to Terminal regardless of NextWorker.
	TaskComplete bool `json:"taskComplete"`
}

// Update is the partial state change returned by a worker. Text fields are
// whole-value overwrites applied only when non-empty; Messages are appended;
// TaskComplete latches true. Applying the same Update twice is safe because
// every target except Messages is an overwrite.
type Update struct {
	// Messages are appended to the run log.
	Messages []ai.Message

	// Next names the worker that should run after this one, or Terminal.
	Next WorkerName

	ResearchData   string
	MarketData     string
	MergedResearch string
	TechnicalText  string
	SummaryText    string
	FinalReport    string
	TaskComplete   bool

	// Warnings records non-fatal degradations (e.g. a merge that proceeded
	// with an empty input). The engine surfaces them on the run result.
	Warnings []Warning

	// Usage is the token usage of any generation calls made by the worker.
	Usage ai.Usage
}

// Merge applies a partial update to the state. Fields present in the
// update overwrite the current value wholesale; Messages are concatenated;
// no field is ever removed.
func (s *State) Merge(u Update) {
	s.Messages = append(s.Messages, u.Messages...)
	s.NextWorker = u.Next

	if u.ResearchData != "" {
		s.ResearchData = u.ResearchData
	}
	if u.MarketData != "" {
		s.MarketData = u.MarketData
	}
	if u.MergedResearch != "" {
		s.MergedResearch = u.MergedResearch
	}
	if u.TechnicalText != "" {
		s.TechnicalText = u.TechnicalText
	}
	if u.SummaryText != "" {
		s.SummaryText = u.SummaryText
	}
	if u.FinalReport != "" {
		s.FinalReport = u.FinalReport
	}
	if u.TaskComplete {
		s.TaskComplete = true
	}
}

// Clone returns a snapshot of the state safe to hand to a worker. The
// message log is copied so appends to the original cannot alias.
func (s State) Clone() State {
	snapshot := s
	snapshot.Messages = make([]ai.Message, len(s.Messages))
	copy(snapshot.Messages, s.Messages)
	return snapshot
}
