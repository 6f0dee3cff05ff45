package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/mwhitby/boardroom"
)

func stepHandler(name, next WorkerName) Handler {
	return NewHandler(name, func(ctx context.Context, snapshot State) (Update, error) {
		return Update{
			Messages: []ai.Message{ai.NewAssistantMessage(string(name) + " done")},
			Next:     next,
		}, nil
	})
}

func TestNewRejectsUnregisteredEntry(t *testing.T) {
	registry, err := NewRegistry(stepHandler("a", Terminal))
	require.NoError(t, err)

	_, err = New(registry, NewRouter("missing"))
	assert.Error(t, err)
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(stepHandler("a", Terminal), stepHandler("a", Terminal))
	assert.Error(t, err)
}

func TestNewRegistryRejectsTerminalName(t *testing.T) {
	_, err := NewRegistry(stepHandler(Terminal, Terminal))
	assert.Error(t, err)
}

func TestRunVisitsChainInOrder(t *testing.T) {
	registry, err := NewRegistry(
		stepHandler("a", "b"),
		stepHandler("b", "c"),
		stepHandler("c", Terminal),
	)
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "some task")
	require.NoError(t, err)

	assert.Equal(t, []WorkerName{"a", "b", "c"}, result.Visited)
	assert.Equal(t, 3, result.Steps)
	// Seed message plus one per worker.
	assert.Len(t, result.State.Messages, 4)
	assert.Equal(t, "some task", result.State.Messages[0].Content)
}

func TestRunRejectsEmptyTask(t *testing.T) {
	registry, err := NewRegistry(stepHandler("a", Terminal))
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"))
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), "   ")
	assert.ErrorIs(t, err, ai.ErrEmptyTask)
}

func TestRunStopsAtStepLimit(t *testing.T) {
	// Two workers that route to each other forever.
	registry, err := NewRegistry(
		stepHandler("ping", "pong"),
		stepHandler("pong", "ping"),
	)
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("ping"), WithMaxSteps(7))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "loop")
	assert.ErrorIs(t, err, ErrStepLimitExceeded)
	assert.Equal(t, 7, result.Steps)
}

func TestRunFailsOnUnknownRoutingTarget(t *testing.T) {
	registry, err := NewRegistry(stepHandler("a", "nowhere"))
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "task")

	var routeErr *RoutingError
	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, WorkerName("nowhere"), routeErr.Worker)
	// Partial state from the step that did run is preserved.
	assert.Equal(t, []WorkerName{"a"}, result.Visited)
}

func TestRunAbortsOnHandlerError(t *testing.T) {
	boom := errors.New("backend down")
	registry, err := NewRegistry(
		stepHandler("ok", "fail"),
		NewHandler("fail", func(ctx context.Context, snapshot State) (Update, error) {
			return Update{}, &GenerationError{Worker: "fail", TaskID: snapshot.TaskID, Err: boom}
		}),
	)
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("ok"))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "task")

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []WorkerName{"ok"}, result.Visited)
	assert.Empty(t, result.State.FinalReport)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	registry, err := NewRegistry(
		NewHandler("a", func(ctx context.Context, snapshot State) (Update, error) {
			cancel()
			return Update{Next: "a"}, nil
		}),
	)
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"))
	require.NoError(t, err)

	_, err = engine.Run(ctx, "task")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCollectsWarningsAndUsage(t *testing.T) {
	registry, err := NewRegistry(
		NewHandler("a", func(ctx context.Context, snapshot State) (Update, error) {
			return Update{
				Next:     Terminal,
				Warnings: []Warning{{Kind: WarnIncompleteInput, Worker: "a", Message: "missing input"}},
				Usage:    ai.Usage{InputTokens: 5, OutputTokens: 7},
			}, nil
		}),
	)
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"))
	require.NoError(t, err)

	result, err := engine.Run(context.Background(), "task")
	require.NoError(t, err)

	assert.True(t, result.Degraded())
	assert.Len(t, result.Warnings, 1)
	assert.Equal(t, 5, result.Usage.InputTokens)
	assert.Equal(t, 7, result.Usage.OutputTokens)
}

func TestRunStateFillsSeedMessageAndTaskID(t *testing.T) {
	registry, err := NewRegistry(stepHandler("a", Terminal))
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"))
	require.NoError(t, err)

	result, err := engine.RunState(context.Background(), State{CurrentTask: "seeded task"})
	require.NoError(t, err)

	assert.NotEmpty(t, result.State.TaskID)
	require.NotEmpty(t, result.State.Messages)
	assert.Equal(t, "seeded task", result.State.Messages[0].Content)
	assert.Equal(t, ai.RoleUser, result.State.Messages[0].Role)
}

func TestRunEmitsLifecycleEvents(t *testing.T) {
	reporter := NewReporter()
	registry, err := NewRegistry(stepHandler("a", Terminal))
	require.NoError(t, err)

	engine, err := New(registry, NewRouter("a"), WithReporter(reporter))
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), "task")
	require.NoError(t, err)
	reporter.Close()

	var types []EventType
	for ev := range reporter.Events() {
		types = append(types, ev.Type)
	}
	assert.Equal(t, []EventType{EventRunStart, EventStepStart, EventStepEnd, EventRunEnd}, types)
}
