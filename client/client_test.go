package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/retry"
)

func TestNewRequiresAnAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})

	var noKey *ErrNoAPIKey
	assert.ErrorAs(t, err, &noKey)
}

func TestNewPrefersAnthropic(t *testing.T) {
	c, err := New(context.Background(), Config{
		APIKeys: APIKeys{
			Anthropic: "key-a",
			OpenAI:    "key-o",
			Groq:      "key-g",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Anthropic", c.Name())
}

func TestNewFallsBackInPriorityOrder(t *testing.T) {
	c, err := New(context.Background(), Config{
		APIKeys: APIKeys{Groq: "key-g"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Groq", c.Name())
}

func TestNewFromGeneratorRetriesTransientFailures(t *testing.T) {
	calls := 0
	gen := ai.GeneratorFunc(func(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
		calls++
		if calls < 3 {
			return nil, ai.NewTransientError("rate limited", 429, nil)
		}
		return &ai.Response{Content: "ok"}, nil
	})

	cfg := retry.Config{MaxAttempts: 5, InitialDelay: 1, MaxDelay: 1, Multiplier: 1}
	c := NewFromGenerator("stub", gen, &cfg)

	resp, err := c.Generate(context.Background(), []ai.Message{ai.NewUserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "stub", c.Name())
}

func TestNewFromGeneratorDoesNotRetryPermanentFailures(t *testing.T) {
	calls := 0
	gen := ai.GeneratorFunc(func(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
		calls++
		return nil, ai.NewPermanentError("bad key", 401, nil)
	})

	c := NewFromGenerator("stub", gen, nil)

	_, err := c.Generate(context.Background(), []ai.Message{ai.NewUserMessage("hi")})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestFromEnvReadsKeys(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "key-a")
	t.Setenv("GROQ_API_KEY", "key-g")
	t.Setenv("BOARDROOM_MODEL", "some-model")

	cfg := FromEnv()

	assert.Equal(t, "key-a", cfg.APIKeys.Anthropic)
	assert.Equal(t, "key-g", cfg.APIKeys.Groq)
	assert.Equal(t, "some-model", cfg.Model)
}
