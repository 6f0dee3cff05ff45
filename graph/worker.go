package graph

import (
	"context"
	"fmt"
	"sort"
)

// WorkerName identifies a worker in the execution graph. The set of valid
// names is closed: a registry rejects unknown names at construction time,
// and the engine treats an unregistered routing target as a RoutingError.
type WorkerName string

// The worker set of the report hierarchy.
const (
	WorkerSupervisor       WorkerName = "supervisor"
	WorkerResearchLead     WorkerName = "research_lead"
	WorkerDataResearcher   WorkerName = "data_researcher"
	WorkerMarketResearcher WorkerName = "market_researcher"
	WorkerMergeResearch    WorkerName = "merge_research"
	WorkerWritingLead      WorkerName = "writing_lead"
	WorkerTechnicalWriter  WorkerName = "technical_writer"
	WorkerSummaryWriter    WorkerName = "summary_writer"
	WorkerCompileReport    WorkerName = "compile_report"
)

// Terminal is the sentinel routing value that ends the run loop.
const Terminal WorkerName = "end"

func (w WorkerName) String() string { return string(w) }

// Handler is a single worker: a function of a state snapshot that returns
// a partial update and a routing hint. Handlers must not retain the
// snapshot; the engine alone merges updates into the live state.
type Handler interface {
	// Name returns the worker's identity in the graph.
	Name() WorkerName

	// Run executes the worker against a snapshot of the current state.
	Run(ctx context.Context, snapshot State) (Update, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc struct {
	name WorkerName
	fn   func(ctx context.Context, snapshot State) (Update, error)
}

// NewHandler creates a Handler from a function.
func NewHandler(name WorkerName, fn func(ctx context.Context, snapshot State) (Update, error)) *HandlerFunc {
	return &HandlerFunc{name: name, fn: fn}
}

// Name returns the worker name.
func (h *HandlerFunc) Name() WorkerName { return h.name }

// Run executes the function.
func (h *HandlerFunc) Run(ctx context.Context, snapshot State) (Update, error) {
	return h.fn(ctx, snapshot)
}

// Registry is the total mapping from worker names to handlers.
type Registry struct {
	handlers map[WorkerName]Handler
}

// NewRegistry creates a Registry from the given handlers. Duplicate or
// empty worker names are rejected here rather than at dispatch time.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	r := &Registry{handlers: make(map[WorkerName]Handler, len(handlers))}
	for _, h := range handlers {
		name := h.Name()
		if name == "" || name == Terminal {
			return nil, fmt.Errorf("graph: invalid worker name %q", name)
		}
		if _, ok := r.handlers[name]; ok {
			return nil, fmt.Errorf("graph: duplicate worker %q", name)
		}
		r.handlers[name] = h
	}
	return r, nil
}

// Get returns the handler registered under name.
func (r *Registry) Get(name WorkerName) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns all registered worker names in sorted order.
func (r *Registry) Names() []WorkerName {
	names := make([]WorkerName, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Len returns the number of registered workers.
func (r *Registry) Len() int { return len(r.handlers) }
