package boardroom

import "context"

// Generator is the text-generation collaborator interface.
// Implementations wrap a provider SDK; callers send a conversation and
// receive a complete response. Calls are synchronous and may fail with a
// transport or quota error; the categorized error helpers in this package
// classify them.
type Generator interface {
	// Generate sends a conversation and returns a complete response.
	Generate(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}

// Response represents a complete response from a generation backend.
type Response struct {
	Content      string `json:"content,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// Add accumulates usage from another response.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, messages []Message, opts ...Option) (*Response, error)

// Generate calls the wrapped function.
func (f GeneratorFunc) Generate(ctx context.Context, messages []Message, opts ...Option) (*Response, error) {
	return f(ctx, messages, opts...)
}
