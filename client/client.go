// Package client selects a text-generation backend from configured API
// keys and wraps it with retry behavior for transient failures.
package client

import (
	"context"
	"fmt"
	"os"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/provider/anthropic"
	"github.com/mwhitby/boardroom/provider/google"
	"github.com/mwhitby/boardroom/provider/openai"
	"github.com/mwhitby/boardroom/retry"
)

// APIKeys holds API keys for the supported providers.
// Only configure keys for providers you intend to use.
type APIKeys struct {
	Anthropic string
	OpenAI    string
	Groq      string
	Google    string
}

// Config holds configuration for creating a client.
type Config struct {
	// APIKeys contains authentication keys for each provider. The first
	// configured provider wins, in the order Anthropic, OpenAI, Groq,
	// Google.
	APIKeys APIKeys

	// Model overrides the selected provider's default model.
	Model string

	// Retry configures retry behavior for transient errors.
	// If nil, the default configuration is used.
	Retry *retry.Config
}

// ErrNoAPIKey is returned when no provider key is configured.
type ErrNoAPIKey struct{}

func (e *ErrNoAPIKey) Error() string {
	return "no API key configured: set one of ANTHROPIC_API_KEY, OPENAI_API_KEY, GROQ_API_KEY, GOOGLE_API_KEY"
}

// Client wraps a single provider-backed generator with retry behavior.
type Client struct {
	gen      ai.Generator
	name     string
	retryCfg retry.Config
}

// New creates a client for the first provider with a configured key.
func New(ctx context.Context, cfg Config) (*Client, error) {
	retryCfg := retry.DefaultConfig()
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}

	gen, name, err := selectProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		gen:      gen,
		name:     name,
		retryCfg: retryCfg,
	}, nil
}

// FromEnv builds a Config from the conventional environment variables.
func FromEnv() Config {
	return Config{
		APIKeys: APIKeys{
			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Groq:      os.Getenv("GROQ_API_KEY"),
			Google:    os.Getenv("GOOGLE_API_KEY"),
		},
		Model: os.Getenv("BOARDROOM_MODEL"),
	}
}

// NewFromGenerator wraps a caller-supplied generator with this client's
// retry behavior. Useful for custom backends and tests.
func NewFromGenerator(name string, gen ai.Generator, retryCfg *retry.Config) *Client {
	cfg := retry.DefaultConfig()
	if retryCfg != nil {
		cfg = *retryCfg
	}
	return &Client{gen: gen, name: name, retryCfg: cfg}
}

func selectProvider(ctx context.Context, cfg Config) (ai.Generator, string, error) {
	keys := cfg.APIKeys
	switch {
	case keys.Anthropic != "":
		opts := anthropicOpts(cfg.Model)
		return anthropic.New(keys.Anthropic, opts...), "Anthropic", nil
	case keys.OpenAI != "":
		opts := openaiOpts(cfg.Model)
		return openai.New(keys.OpenAI, opts...), "OpenAI", nil
	case keys.Groq != "":
		opts := openaiOpts(cfg.Model)
		return openai.NewGroq(keys.Groq, opts...), "Groq", nil
	case keys.Google != "":
		var opts []google.ClientOption
		if cfg.Model != "" {
			opts = append(opts, google.WithModel(cfg.Model))
		}
		gen, err := google.New(ctx, keys.Google, opts...)
		if err != nil {
			return nil, "", fmt.Errorf("initializing google client: %w", err)
		}
		return gen, "Google Gemini", nil
	default:
		return nil, "", &ErrNoAPIKey{}
	}
}

func anthropicOpts(model string) []anthropic.ClientOption {
	if model == "" {
		return nil
	}
	return []anthropic.ClientOption{anthropic.WithModel(model)}
}

func openaiOpts(model string) []openai.ClientOption {
	if model == "" {
		return nil
	}
	return []openai.ClientOption{openai.WithModel(model)}
}

// Name reports the selected backend, suitable for display.
func (c *Client) Name() string {
	return c.name
}

// Generate calls the underlying provider, retrying transient failures
// per the configured policy.
func (c *Client) Generate(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return retry.Do(ctx, c.retryCfg, func() (*ai.Response, error) {
		return c.gen.Generate(ctx, messages, opts...)
	})
}

var _ ai.Generator = (*Client)(nil)
