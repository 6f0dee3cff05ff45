package anthropic

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/mwhitby/boardroom"
)

// wrapError attaches retry categorization to Anthropic SDK errors.
// Status codes and Retry-After headers feed the retry layer.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		// Not an API error, return as-is (likely network error, handled by heuristics)
		return err
	}

	code := apiErr.StatusCode
	msg := err.Error()

	if transientStatus(code) {
		if retryAfter := parseRetryAfter(apiErr.Response); retryAfter > 0 {
			return boardroom.NewTransientErrorWithRetry(msg, code, retryAfter, err)
		}
		return boardroom.NewTransientError(msg, code, err)
	}
	return boardroom.NewPermanentError(msg, code, err)
}

// transientStatus reports whether an HTTP status code is worth retrying.
// Rate limits and server errors are; everything else is permanent.
func transientStatus(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code < 600)
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	// Try parsing as seconds (most common)
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(header); err == nil {
		delay := time.Until(t)
		if delay > 0 {
			return delay
		}
	}

	return 0
}
