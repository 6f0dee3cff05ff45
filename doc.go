// Package boardroom provides a multi-agent report generation engine.
//
// A fixed hierarchy of specialized workers (a supervisor, two team leads,
// two researchers, two writers, and two aggregation steps) collaborates on
// a single task by threading a shared state record through a routed
// execution graph. The graph subpackage holds the engine, the report
// subpackage the worker set, and the provider subpackages the
// text-generation backends.
//
// The root package defines the types shared by all of them: messages,
// generation responses, functional options, and categorized errors.
package boardroom
