package graph

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/mwhitby/boardroom"
)

// DefaultMaxSteps bounds the run loop. The baseline happy path takes ten
// steps; the default leaves headroom without letting a broken routing
// policy spin forever.
const DefaultMaxSteps = 25

// Engine drives the run loop: pick the current worker, invoke it against a
// state snapshot, merge the returned update, consult the router, repeat
// until the router resolves to Terminal or the step bound trips.
type Engine struct {
	registry *Registry
	router   *Router
	maxSteps int
	reporter *Reporter
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSteps overrides the maximum step count.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithReporter attaches a progress event reporter.
func WithReporter(r *Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// New creates an Engine. The router's entry worker must be registered;
// an unknown entry is rejected here rather than on the first step.
func New(registry *Registry, router *Router, opts ...Option) (*Engine, error) {
	if _, ok := registry.Get(router.Entry()); !ok {
		return nil, &RoutingError{Worker: router.Entry()}
	}
	e := &Engine{
		registry: registry,
		router:   router,
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Result is the outcome of a run. On error the engine still returns the
// partial state accumulated so far, so callers can inspect how far the
// run progressed.
type Result struct {
	// State is the final (or partial, on error) shared state.
	State State

	// Visited lists the workers in invocation order.
	Visited []WorkerName

	// Warnings collects non-fatal degradations from merge and compile.
	Warnings []Warning

	// Usage is the accumulated token usage across all generation calls.
	Usage ai.Usage

	// Steps is the number of worker invocations performed.
	Steps int
}

// Degraded reports whether the run completed with incomplete inputs.
func (r *Result) Degraded() bool {
	return len(r.Warnings) > 0
}

// Run starts a fresh run for the given task: it seeds the state with the
// task and a seed message, then executes the loop to completion.
func (e *Engine) Run(ctx context.Context, task string) (*Result, error) {
	if strings.TrimSpace(task) == "" {
		return nil, ai.ErrEmptyTask
	}
	initial := State{
		TaskID:      ai.GenerateTaskID(),
		CurrentTask: task,
		Messages:    []ai.Message{ai.NewUserMessage(task)},
	}
	return e.RunState(ctx, initial)
}

// RunState executes the loop from an existing initial state. The state
// must carry a non-empty CurrentTask; a missing TaskID or seed message is
// filled in.
func (e *Engine) RunState(ctx context.Context, initial State) (*Result, error) {
	if strings.TrimSpace(initial.CurrentTask) == "" {
		return nil, ai.ErrEmptyTask
	}
	if initial.TaskID == "" {
		initial.TaskID = ai.GenerateTaskID()
	}
	if len(initial.Messages) == 0 {
		initial.Messages = []ai.Message{ai.NewUserMessage(initial.CurrentTask)}
	}

	result := &Result{State: initial}
	state := &result.State

	e.reporter.Emit(Event{Type: EventRunStart, TaskID: state.TaskID})

	for {
		next := e.router.Decide(*state)
		if next == Terminal {
			e.reporter.Emit(Event{Type: EventRunEnd, Step: result.Steps, TaskID: state.TaskID})
			return result, nil
		}

		if result.Steps >= e.maxSteps {
			err := fmt.Errorf("%w after %d steps (task %s)", ErrStepLimitExceeded, result.Steps, state.TaskID)
			e.reporter.Emit(Event{Type: EventRunError, Step: result.Steps, Message: err.Error(), TaskID: state.TaskID})
			return result, err
		}

		if err := ctx.Err(); err != nil {
			e.reporter.Emit(Event{Type: EventRunError, Worker: next, Step: result.Steps, Message: err.Error(), TaskID: state.TaskID})
			return result, err
		}

		handler, ok := e.registry.Get(next)
		if !ok {
			err := &RoutingError{Worker: next}
			e.reporter.Emit(Event{Type: EventRunError, Worker: next, Step: result.Steps, Message: err.Error(), TaskID: state.TaskID})
			return result, err
		}

		result.Steps++
		e.reporter.Emit(Event{Type: EventStepStart, Worker: next, Step: result.Steps, TaskID: state.TaskID})

		update, err := handler.Run(ctx, state.Clone())
		if err != nil {
			e.reporter.Emit(Event{Type: EventRunError, Worker: next, Step: result.Steps, Message: err.Error(), TaskID: state.TaskID})
			return result, err
		}

		state.Merge(update)
		result.Visited = append(result.Visited, next)
		result.Warnings = append(result.Warnings, update.Warnings...)
		result.Usage.Add(update.Usage)

		var logLine string
		if n := len(update.Messages); n > 0 {
			logLine = update.Messages[n-1].Content
		}
		e.reporter.Emit(Event{Type: EventStepEnd, Worker: next, Step: result.Steps, Message: logLine, TaskID: state.TaskID})
	}
}
