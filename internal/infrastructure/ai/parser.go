package ai

import (
	"encoding/json"
	"strings"

	"triagedesk/internal/domain/triage"
	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/errors"
)

// classifierResponse mirrors the JSON object the model is instructed to
// return.
type classifierResponse struct {
	StructuredData    triage.StructuredData `json:"structuredData"`
	UrgencyLevel      string                `json:"urgencyLevel"`
	RedFlags          []string              `json:"redFlags"`
	AISummary         string                `json:"aiSummary"`
	Rationale         string                `json:"rationale"`
	RecommendedAction string                `json:"recommendedAction"`
}

// parseAssessment validates the raw model reply and turns it into a domain
// assessment. Missing urgencyLevel or aiSummary is unusable; an unrecognized
// urgency value is coerced to CLINIC_VISIT rather than rejected, so a
// misspelled tier never blocks a patient submission.
func parseAssessment(raw string) (*triage.Assessment, error) {
	cleaned := stripCodeFence(raw)

	var resp classifierResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, errors.NewClassificationError("failed to parse AI response", err.Error())
	}

	if len(resp.UrgencyLevel) == 0 || len(resp.AISummary) == 0 {
		return nil, errors.NewClassificationError("invalid response structure from classifier", "urgencyLevel and aiSummary are required")
	}

	level := vo.CoerceUrgencyLevel(resp.UrgencyLevel)

	detected := triage.DetectRedFlags(resp.StructuredData.Symptoms)
	redFlags := triage.MergeRedFlags(resp.RedFlags, detected)

	assessment, err := triage.NewAssessment(
		level,
		resp.AISummary,
		resp.StructuredData,
		redFlags,
		resp.Rationale,
		resp.RecommendedAction,
	)
	if err != nil {
		return nil, errors.NewClassificationError("failed to build assessment from AI response", err.Error())
	}

	return assessment, nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON in.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
