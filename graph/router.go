package graph

// Router picks the next worker after each step. It is total and
// side-effect-free: it never blocks and never fails.
type Router struct {
	entry WorkerName
}

// NewRouter creates a Router with the given entry worker. The entry worker
// is returned whenever no routing hint has been set yet, which covers the
// very first step of a run.
func NewRouter(entry WorkerName) *Router {
	return &Router{entry: entry}
}

// Entry returns the fixed entry worker.
func (r *Router) Entry() WorkerName { return r.entry }

// Decide returns the next worker for the given state, or Terminal.
// A completed task resolves to Terminal unconditionally, regardless of any
// routing hint left behind by the last worker.
func (r *Router) Decide(s State) WorkerName {
	if s.TaskComplete {
		return Terminal
	}
	if s.NextWorker == "" {
		return r.entry
	}
	return s.NextWorker
}
