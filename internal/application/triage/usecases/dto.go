package usecases

import (
	"time"

	"triagedesk/internal/domain/triage"
)

// CaseResult is the case representation returned by every case use case.
type CaseResult struct {
	ID                uint                  `json:"id"`
	Number            string                `json:"number"`
	PatientID         uint                  `json:"patient_id"`
	RawInput          string                `json:"raw_input"`
	InputType         string                `json:"input_type"`
	Transcript        *string               `json:"transcript,omitempty"`
	UrgencyLevel      string                `json:"urgency_level"`
	Priority          int                   `json:"priority"`
	AISummary         string                `json:"ai_summary"`
	StructuredData    triage.StructuredData `json:"structured_data"`
	RedFlags          []string              `json:"red_flags"`
	Rationale         string                `json:"rationale"`
	RecommendedAction string                `json:"recommended_action"`
	FollowUp          string                `json:"follow_up"`
	Status            string                `json:"status"`
	ClinicianNotes    string                `json:"clinician_notes,omitempty"`
	StaffOverride     bool                  `json:"staff_override"`
	OverrideReason    string                `json:"override_reason,omitempty"`
	ResolvedAt        *string               `json:"resolved_at,omitempty"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
}

// AIOutputResult is the classification audit record attached to a case detail
// for staff viewers.
type AIOutputResult struct {
	ModelUsed    string `json:"model_used"`
	Prompt       string `json:"prompt"`
	RawResponse  string `json:"raw_response"`
	ProcessingMs int64  `json:"processing_ms"`
	CreatedAt    string `json:"created_at"`
}

// CaseDetailResult is a CaseResult plus the audit record, returned by the
// single-case lookup.
type CaseDetailResult struct {
	CaseResult
	AIOutput *AIOutputResult `json:"ai_output,omitempty"`
}

func newAIOutputResult(o *triage.AIOutput) *AIOutputResult {
	return &AIOutputResult{
		ModelUsed:    o.ModelUsed(),
		Prompt:       o.Prompt(),
		RawResponse:  o.Response(),
		ProcessingMs: o.ProcessingMs(),
		CreatedAt:    o.CreatedAt().Format(time.RFC3339),
	}
}

func newCaseResult(c *triage.Case) *CaseResult {
	var resolvedAt *string
	if c.ResolvedAt() != nil {
		formatted := c.ResolvedAt().Format(time.RFC3339)
		resolvedAt = &formatted
	}

	return &CaseResult{
		ID:                c.ID(),
		Number:            c.Number(),
		PatientID:         c.PatientID(),
		RawInput:          c.RawInput(),
		InputType:         c.InputType().String(),
		Transcript:        c.Transcript(),
		UrgencyLevel:      c.UrgencyLevel().String(),
		Priority:          c.Priority(),
		AISummary:         c.AISummary(),
		StructuredData:    c.StructuredData(),
		RedFlags:          c.RedFlags(),
		Rationale:         c.Rationale(),
		RecommendedAction: c.RecommendedAction(),
		FollowUp:          c.UrgencyLevel().FollowUpRecommendation(),
		Status:            c.Status().String(),
		ClinicianNotes:    c.ClinicianNotes(),
		StaffOverride:     c.StaffOverride(),
		OverrideReason:    c.OverrideReason(),
		ResolvedAt:        resolvedAt,
		CreatedAt:         c.CreatedAt().Format(time.RFC3339),
		UpdatedAt:         c.UpdatedAt().Format(time.RFC3339),
	}
}
