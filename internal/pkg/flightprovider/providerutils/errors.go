package providerutils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/RawatAr/travel-planner-ai/internal/pkg/exception"
)

var ErrProviderInternalError = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider internal error or temporary unavailable",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

var ErrProviderNotConfigured = exception.ApplicationError{
	StatusCode: http.StatusServiceUnavailable,
	Message:    "provider api key not configured",
}

var ErrProviderMalformedResponse = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider returned a malformed response",
}

// ProviderError reports a failed call to an upstream flight search provider.
// StatusCode is the upstream HTTP status, or 0 when no response was received.
type ProviderError struct {
	Provider   string
	StatusCode int
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Provider, e.StatusCode, e.Cause)
	}

	return fmt.Sprintf("%s: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// IsProviderError reports whether err came from a provider call.
func IsProviderError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}
