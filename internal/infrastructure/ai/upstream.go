package ai

import (
	stderrors "errors"
	"net/http"

	"google.golang.org/genai"

	"triagedesk/internal/shared/errors"
)

// mapUpstreamError translates a failed model call into the application
// taxonomy. Rejected credentials are an operator problem, rate limits are
// caller-retryable, anything else carries the upstream message as a
// classification failure.
func mapUpstreamError(operation string, err error) error {
	switch upstreamStatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.NewConfigurationError(operation+" credentials were rejected by the provider", err.Error())
	case http.StatusTooManyRequests:
		return errors.NewTransientError(operation+" was rate limited by the provider, please try again", err.Error())
	default:
		return errors.NewClassificationError(operation+" request failed", err.Error())
	}
}

// upstreamStatusCode extracts the HTTP status from a provider error, or zero
// when the failure never reached the API (network errors and the like). The
// SDK reports API errors by value or by pointer depending on the call path.
func upstreamStatusCode(err error) int {
	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if stderrors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}
