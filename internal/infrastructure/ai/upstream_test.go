package ai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"google.golang.org/genai"

	"triagedesk/internal/shared/errors"
)

func TestMapUpstreamError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		label string
	}{
		{
			name:  "rejected api key alerts operators",
			err:   genai.APIError{Code: 401, Message: "API key not valid"},
			check: errors.IsConfigurationError,
			label: "configuration",
		},
		{
			name:  "forbidden key alerts operators",
			err:   genai.APIError{Code: 403, Message: "permission denied"},
			check: errors.IsConfigurationError,
			label: "configuration",
		},
		{
			name:  "rate limit is retryable",
			err:   genai.APIError{Code: 429, Message: "resource exhausted"},
			check: errors.IsTransientError,
			label: "transient",
		},
		{
			name:  "other upstream status is a classification failure",
			err:   genai.APIError{Code: 400, Message: "invalid request"},
			check: errors.IsClassificationError,
			label: "classification",
		},
		{
			name:  "wrapped api error is still unwrapped",
			err:   fmt.Errorf("generate content: %w", genai.APIError{Code: 401}),
			check: errors.IsConfigurationError,
			label: "configuration",
		},
		{
			name:  "pointer api error is handled",
			err:   &genai.APIError{Code: 429},
			check: errors.IsTransientError,
			label: "transient",
		},
		{
			name:  "non-api error is a classification failure",
			err:   fmt.Errorf("dial tcp: connection refused"),
			check: errors.IsClassificationError,
			label: "classification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapUpstreamError("classification", tt.err)
			assert.True(t, tt.check(mapped), "expected %s error, got %v", tt.label, mapped)

			appErr := errors.GetAppError(mapped)
			assert.NotNil(t, appErr)
			assert.Contains(t, appErr.Details, tt.err.Error(), "upstream message must be carried")
		})
	}
}
