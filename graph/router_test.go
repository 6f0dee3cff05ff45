package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideReturnsEntryForFreshState(t *testing.T) {
	r := NewRouter(WorkerSupervisor)

	assert.Equal(t, WorkerSupervisor, r.Decide(State{}))
}

func TestDecideFollowsRoutingHint(t *testing.T) {
	r := NewRouter(WorkerSupervisor)

	assert.Equal(t, WorkerMergeResearch, r.Decide(State{NextWorker: WorkerMergeResearch}))
}

func TestDecideCompletedTaskAlwaysTerminal(t *testing.T) {
	r := NewRouter(WorkerSupervisor)

	// Regardless of any routing hint left behind.
	hints := []WorkerName{"", WorkerSupervisor, WorkerDataResearcher, Terminal}
	for _, hint := range hints {
		s := State{TaskComplete: true, NextWorker: hint}
		assert.Equal(t, Terminal, r.Decide(s), "hint %q", hint)
	}
}
