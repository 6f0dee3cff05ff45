package google

import (
	"errors"

	"github.com/mwhitby/boardroom"
	"google.golang.org/genai"
)

// wrapError attaches retry categorization to Google GenAI errors.
// genai.APIError does not expose headers, so Retry-After is not available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		// Not an API error, return as-is (likely network error, handled by heuristics)
		return err
	}

	code := apiErr.Code
	msg := err.Error()

	if transientStatus(code) {
		return boardroom.NewTransientError(msg, code, err)
	}
	return boardroom.NewPermanentError(msg, code, err)
}

// transientStatus reports whether an HTTP status code is worth retrying.
// Rate limits and server errors are; everything else is permanent.
func transientStatus(code int) bool {
	return code == 429 || (code >= 500 && code < 600)
}
