package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ai "github.com/mwhitby/boardroom"
)

func TestMergeAppendsMessages(t *testing.T) {
	s := State{
		Messages: []ai.Message{ai.NewUserMessage("topic")},
	}

	s.Merge(Update{
		Messages: []ai.Message{ai.NewAssistantMessage("first")},
	})
	s.Merge(Update{
		Messages: []ai.Message{ai.NewAssistantMessage("second")},
	})

	assert.Len(t, s.Messages, 3)
	assert.Equal(t, "topic", s.Messages[0].Content)
	assert.Equal(t, "second", s.Messages[2].Content)
}

func TestMergeOverwritesNonEmptyFields(t *testing.T) {
	s := State{ResearchData: "old"}

	s.Merge(Update{ResearchData: "new", MarketData: "trends"})

	assert.Equal(t, "new", s.ResearchData)
	assert.Equal(t, "trends", s.MarketData)
}

func TestMergeEmptyFieldDoesNotClear(t *testing.T) {
	s := State{ResearchData: "kept", MergedResearch: "kept too"}

	s.Merge(Update{MarketData: "only this"})

	assert.Equal(t, "kept", s.ResearchData)
	assert.Equal(t, "kept too", s.MergedResearch)
	assert.Equal(t, "only this", s.MarketData)
}

func TestMergeLatchesTaskComplete(t *testing.T) {
	s := State{}

	s.Merge(Update{TaskComplete: true})
	assert.True(t, s.TaskComplete)

	// A later update without the flag must not reset it.
	s.Merge(Update{Next: WorkerSupervisor})
	assert.True(t, s.TaskComplete)
}

func TestMergeIsIdempotentForDataFields(t *testing.T) {
	s := State{}
	u := Update{
		ResearchData:   "data",
		MergedResearch: "merged",
		TaskComplete:   true,
	}

	s.Merge(u)
	once := s
	s.Merge(u)

	assert.Equal(t, once.ResearchData, s.ResearchData)
	assert.Equal(t, once.MergedResearch, s.MergedResearch)
	assert.Equal(t, once.TaskComplete, s.TaskComplete)
}

func TestCloneIsolatesMessageLog(t *testing.T) {
	s := State{
		Messages: []ai.Message{ai.NewUserMessage("topic")},
	}

	snapshot := s.Clone()
	s.Merge(Update{Messages: []ai.Message{ai.NewAssistantMessage("appended")}})

	assert.Len(t, snapshot.Messages, 1)
	assert.Len(t, s.Messages, 2)
}
