package openai

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitby/boardroom"
	"github.com/mwhitby/boardroom/retry"
	openaisdk "github.com/openai/openai-go"
)

// apiError builds an SDK error the way the transport layer would, with
// enough of the request and response populated for Error() to format.
func apiError(status int, header http.Header) *openaisdk.Error {
	req, _ := http.NewRequest(http.MethodPost, GroqBaseURL+"/chat/completions", nil)
	if header == nil {
		header = http.Header{}
	}
	return &openaisdk.Error{
		StatusCode: status,
		Request:    req,
		Response:   &http.Response{StatusCode: status, Header: header},
	}
}

func TestWrapErrorRateLimitIsTransient(t *testing.T) {
	err := wrapError(apiError(http.StatusTooManyRequests, nil))
	assert.True(t, boardroom.IsTransient(err))
	assert.Equal(t, 429, boardroom.StatusCodeOf(err))
}

func TestWrapErrorServerErrorIsTransient(t *testing.T) {
	err := wrapError(apiError(http.StatusServiceUnavailable, nil))
	assert.True(t, boardroom.IsTransient(err))
}

func TestWrapErrorAuthFailureIsPermanent(t *testing.T) {
	err := wrapError(apiError(http.StatusUnauthorized, nil))
	assert.True(t, boardroom.IsPermanent(err))
	assert.False(t, boardroom.IsTransient(err))
}

func TestWrapErrorHonorsRetryAfterHeader(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "7")
	err := wrapError(apiError(http.StatusTooManyRequests, header))
	assert.True(t, boardroom.IsTransient(err))
	assert.Equal(t, 7*time.Second, boardroom.RetryAfterOf(err))
}

func TestWrapErrorPreservesCause(t *testing.T) {
	sdkErr := apiError(http.StatusTooManyRequests, nil)
	err := wrapError(sdkErr)

	var unwrapped *openaisdk.Error
	require.True(t, errors.As(err, &unwrapped))
	assert.Equal(t, 429, unwrapped.StatusCode)
}

func TestWrapErrorPassesThroughPlainErrors(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, wrapError(plain))
	assert.False(t, boardroom.IsTransient(wrapError(plain)))
	assert.NoError(t, wrapError(nil))
}

func TestRateLimitIsRetried(t *testing.T) {
	calls := 0
	fn := func() (string, error) {
		calls++
		if calls < 3 {
			return "", wrapError(apiError(http.StatusTooManyRequests, nil))
		}
		return "ok", nil
	}

	cfg := retry.Config{MaxAttempts: 5, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
	result, err := retry.Do(context.Background(), cfg, fn)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}
