// Package report implements the fixed worker hierarchy that turns a single
// task description into a compiled report: a supervisor, a research team
// (data + market researchers with a merge step), and a writing team
// (technical + summary writers with a compile step).
package report

import (
	"context"
	"time"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/graph"
)

const (
	// previewLen bounds the response excerpt echoed into the run log.
	previewLen = 400

	// excerptLen bounds how much merged research is fed to the writers.
	excerptLen = 2000
)

// Pipeline builds the worker set against a text-generation backend.
type Pipeline struct {
	gen        ai.Generator
	backend    string
	genOpts    []ai.Option
	now        func() time.Time
	concurrent bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBackendName sets the backend name credited in the report footer.
func WithBackendName(name string) Option {
	return func(p *Pipeline) {
		if name != "" {
			p.backend = name
		}
	}
}

// WithGenerateOptions sets options passed to every generation call
// (model, max tokens, temperature).
func WithGenerateOptions(opts ...ai.Option) Option {
	return func(p *Pipeline) {
		p.genOpts = append(p.genOpts, opts...)
	}
}

// WithClock overrides the timestamp source used by the compile step.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// WithConcurrentTeams makes each team lead run its two workers
// concurrently with a join before the aggregation step, instead of the
// sequential hand-off. Worker logic is unchanged; only the dispatch
// differs.
func WithConcurrentTeams() Option {
	return func(p *Pipeline) {
		p.concurrent = true
	}
}

// New creates a Pipeline over the given backend.
func New(gen ai.Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:     gen,
		backend: "LLM",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the full worker registry for this pipeline.
func (p *Pipeline) Registry() (*graph.Registry, error) {
	return graph.NewRegistry(
		p.supervisor(),
		p.researchLead(),
		p.dataResearcher(),
		p.marketResearcher(),
		p.mergeResearch(),
		p.writingLead(),
		p.technicalWriter(),
		p.summaryWriter(),
		p.compileReport(),
	)
}

// Engine wires the registry and router into a ready-to-run engine with the
// supervisor as the entry worker.
func (p *Pipeline) Engine(opts ...graph.Option) (*graph.Engine, error) {
	registry, err := p.Registry()
	if err != nil {
		return nil, err
	}
	return graph.New(registry, graph.NewRouter(graph.WorkerSupervisor), opts...)
}

// generate issues one backend call for the given prompt.
func (p *Pipeline) generate(ctx context.Context, prompt string) (*ai.Response, error) {
	return p.gen.Generate(ctx, []ai.Message{ai.NewUserMessage(prompt)}, p.genOpts...)
}

// preview truncates a response for the run log. Limits count runes, not
// bytes, so multibyte characters are never split mid-sequence.
func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "..."
}

// excerpt bounds the research text embedded in writer prompts.
func excerpt(s string) string {
	if len(s) <= excerptLen {
		return s
	}
	r := []rune(s)
	if len(r) <= excerptLen {
		return s
	}
	return string(r[:excerptLen])
}
