package triage

import (
	"fmt"

	vo "triagedesk/internal/domain/triage/valueobjects"
)

// StructuredData is the clinical extraction the classifier produces from the
// patient narrative. Every field is best-effort; absent fields stay zero.
type StructuredData struct {
	ChiefComplaint     string   `json:"chiefComplaint"`
	Symptoms           []string `json:"symptoms"`
	Duration           string   `json:"duration"`
	Onset              string   `json:"onset"`
	Severity           string   `json:"severity"`
	AssociatedSymptoms []string `json:"associatedSymptoms"`
	RelevantHistory    string   `json:"relevantHistory"`
	VitalSigns         string   `json:"vitalSigns"`
	PainScale          string   `json:"painScale"`
	EmotionalState     string   `json:"emotionalState"`
}

// Assessment is one validated classifier judgment. It is only constructed
// through NewAssessment, so downstream code can rely on the urgency being one
// of the four tiers and RedFlags being non-nil.
type Assessment struct {
	urgencyLevel      vo.UrgencyLevel
	aiSummary         string
	structuredData    StructuredData
	redFlags          []string
	rationale         string
	recommendedAction string
}

const (
	defaultRationale         = "No rationale provided"
	defaultRecommendedAction = "Please consult with a healthcare provider"
)

func NewAssessment(
	urgencyLevel vo.UrgencyLevel,
	aiSummary string,
	structuredData StructuredData,
	redFlags []string,
	rationale string,
	recommendedAction string,
) (*Assessment, error) {
	if !urgencyLevel.IsValid() {
		return nil, fmt.Errorf("invalid urgency level: %s", urgencyLevel)
	}
	if len(aiSummary) == 0 {
		return nil, fmt.Errorf("AI summary is required")
	}

	if redFlags == nil {
		redFlags = []string{}
	}
	if len(rationale) == 0 {
		rationale = defaultRationale
	}
	if len(recommendedAction) == 0 {
		recommendedAction = defaultRecommendedAction
	}

	return &Assessment{
		urgencyLevel:      urgencyLevel,
		aiSummary:         aiSummary,
		structuredData:    structuredData,
		redFlags:          redFlags,
		rationale:         rationale,
		recommendedAction: recommendedAction,
	}, nil
}

func (a *Assessment) UrgencyLevel() vo.UrgencyLevel {
	return a.urgencyLevel
}

func (a *Assessment) AISummary() string {
	return a.aiSummary
}

func (a *Assessment) StructuredData() StructuredData {
	return a.structuredData
}

func (a *Assessment) RedFlags() []string {
	flagsCopy := make([]string, len(a.redFlags))
	copy(flagsCopy, a.redFlags)
	return flagsCopy
}

func (a *Assessment) Rationale() string {
	return a.rationale
}

func (a *Assessment) RecommendedAction() string {
	return a.recommendedAction
}
