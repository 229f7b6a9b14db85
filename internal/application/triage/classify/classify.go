// Package classify defines the boundary between the triage workflow and the
// AI provider. Implementations live in the infrastructure layer.
package classify

import (
	"context"
	"time"

	"triagedesk/internal/domain/triage"
)

// Result carries the assessment produced by the classifier together with the
// audit trail recorded alongside each case.
type Result struct {
	Assessment     *triage.Assessment
	ModelUsed      string
	Prompt         string
	RawResponse    string
	ProcessingTime time.Duration
}

// Classifier turns a symptom narrative into a structured assessment.
type Classifier interface {
	Classify(ctx context.Context, narrative string) (*Result, error)
}

// Transcriber converts an audio recording of a patient describing symptoms
// into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
