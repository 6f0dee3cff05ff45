package graph

import (
	"errors"
	"fmt"
)

// ErrStepLimitExceeded indicates the engine hit its maximum step count
// before reaching Terminal. It protects against an inconsistent routing
// policy producing an infinite cycle.
var ErrStepLimitExceeded = errors.New("graph: step limit exceeded")

// GenerationError indicates the text-generation collaborator failed or
// returned an unusable response while a worker was running.
type GenerationError struct {
	Worker WorkerName
	TaskID string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("graph: generation failed in worker %q (task %s): %v", e.Worker, e.TaskID, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// RoutingError indicates a worker produced a next-worker name not present
// in the registered worker set. This is a programming-contract violation,
// fatal to the run.
type RoutingError struct {
	Worker WorkerName
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("graph: no worker registered for %q", e.Worker)
}

// WarningKind classifies non-fatal degradations.
type WarningKind string

const (
	// WarnIncompleteInput marks a merge or compile step that proceeded
	// with an empty upstream field. The run completes but the resulting
	// report is degraded.
	WarnIncompleteInput WarningKind = "incomplete_input"
)

// Warning is a non-fatal degradation surfaced on the run result.
type Warning struct {
	Kind    WarningKind
	Worker  WorkerName
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Worker, w.Message)
}
