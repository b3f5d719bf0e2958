package blogsearch

import (
	"context"
	"errors"
	"net"
	"strings"

	apperrors "github.com/blogscout/search-api/pkg/errors"
)

// Result texts the API reports inside an operationResult envelope.
// Compared case-insensitively.
const (
	resultServiceUnavailable = "service unavailable"
	resultUnknownAPIKey      = "api key does not exist"
	resultUnauthorizedAPIKey = "unauthorized api key"
)

// mapFailure classifies a failed or ambiguous exchange into exactly one
// typed error. It is a pure function of the captured response body and
// the triggering failure, so it is safe to call from anywhere.
func mapFailure(body []byte, cause error) *apperrors.AppError {
	if isTimeout(cause) {
		return apperrors.Wrap(cause, apperrors.ErrCodeRequestTimeout, "request timed out")
	}

	if strings.TrimSpace(string(body)) == "" {
		return apperrors.Wrap(cause, apperrors.ErrCodeEmptyResponse, "empty response from server")
	}

	op, err := parseOperationResult(body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDeserialization, "unable to interpret server response")
	}

	switch strings.ToLower(strings.TrimSpace(op.Result)) {
	case resultServiceUnavailable:
		return apperrors.Wrap(cause, apperrors.ErrCodeServiceUnavailable, "server reported service unavailable")
	case resultUnknownAPIKey:
		return apperrors.Wrap(cause, apperrors.ErrCodeUnknownAPIKey, "server does not recognize the API key")
	case resultUnauthorizedAPIKey:
		return apperrors.Wrap(cause, apperrors.ErrCodeUnauthorizedAPIKey, "API key is not authorized for this request")
	default:
		// The body already fit the small error schema, so it is bounded
		// and safe to embed verbatim.
		return apperrors.Wrapf(cause, apperrors.ErrCodeUnknownAPIError, "server returned an unknown error: %s", strings.TrimSpace(string(body)))
	}
}

// isTimeout reports whether the failure is a cancellation or deadline signal.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
