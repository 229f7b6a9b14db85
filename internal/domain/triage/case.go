package triage

import (
	"fmt"
	"strings"
	"time"

	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/authorization"
)

const (
	// MinNarrativeLength is enforced before any classifier call is made.
	MinNarrativeLength = 10
	MaxNarrativeLength = 5000
)

// NormalizeNarrative cleans raw patient input before it reaches the
// classifier. Pure: no side effects.
func NormalizeNarrative(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if len(cleaned) < MinNarrativeLength {
		return "", fmt.Errorf("please provide more details about your symptoms (at least %d characters)", MinNarrativeLength)
	}
	if len(cleaned) > MaxNarrativeLength {
		return "", fmt.Errorf("symptom description exceeds maximum length of %d characters", MaxNarrativeLength)
	}
	return cleaned, nil
}

// Case is one patient triage submission and its full review lifecycle.
type Case struct {
	id             uint
	number         string
	patientID      uint
	rawInput       string
	inputType      vo.InputType
	transcript     *string
	urgencyLevel   vo.UrgencyLevel
	aiSummary      string
	structuredData StructuredData
	redFlags       []string
	rationale      string
	recommended    string
	status         vo.CaseStatus
	clinicianNotes string
	staffOverride  bool
	overrideReason string
	resolvedAt     *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCase(
	patientID uint,
	rawInput string,
	inputType vo.InputType,
	transcript *string,
	assessment *Assessment,
) (*Case, error) {
	if patientID == 0 {
		return nil, fmt.Errorf("patient ID is required")
	}
	if len(strings.TrimSpace(rawInput)) < MinNarrativeLength {
		return nil, fmt.Errorf("raw input is too short")
	}
	if !inputType.IsValid() {
		return nil, fmt.Errorf("invalid input type")
	}
	if assessment == nil {
		return nil, fmt.Errorf("assessment is required")
	}

	now := time.Now()

	return &Case{
		patientID:      patientID,
		rawInput:       rawInput,
		inputType:      inputType,
		transcript:     transcript,
		urgencyLevel:   assessment.UrgencyLevel(),
		aiSummary:      assessment.AISummary(),
		structuredData: assessment.StructuredData(),
		redFlags:       assessment.RedFlags(),
		rationale:      assessment.Rationale(),
		recommended:    assessment.RecommendedAction(),
		status:         vo.StatusOpen,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructCase(
	id uint,
	number string,
	patientID uint,
	rawInput string,
	inputType vo.InputType,
	transcript *string,
	urgencyLevel vo.UrgencyLevel,
	aiSummary string,
	structuredData StructuredData,
	redFlags []string,
	rationale string,
	recommendedAction string,
	status vo.CaseStatus,
	clinicianNotes string,
	staffOverride bool,
	overrideReason string,
	resolvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Case, error) {
	if id == 0 {
		return nil, fmt.Errorf("case ID cannot be zero")
	}
	if patientID == 0 {
		return nil, fmt.Errorf("patient ID is required")
	}
	if !inputType.IsValid() {
		return nil, fmt.Errorf("invalid input type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if redFlags == nil {
		redFlags = []string{}
	}

	return &Case{
		id:             id,
		number:         number,
		patientID:      patientID,
		rawInput:       rawInput,
		inputType:      inputType,
		transcript:     transcript,
		urgencyLevel:   urgencyLevel,
		aiSummary:      aiSummary,
		structuredData: structuredData,
		redFlags:       redFlags,
		rationale:      rationale,
		recommended:    recommendedAction,
		status:         status,
		clinicianNotes: clinicianNotes,
		staffOverride:  staffOverride,
		overrideReason: overrideReason,
		resolvedAt:     resolvedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *Case) ID() uint                       { return c.id }
func (c *Case) Number() string                 { return c.number }
func (c *Case) PatientID() uint                { return c.patientID }
func (c *Case) RawInput() string               { return c.rawInput }
func (c *Case) InputType() vo.InputType        { return c.inputType }
func (c *Case) Transcript() *string            { return c.transcript }
func (c *Case) UrgencyLevel() vo.UrgencyLevel  { return c.urgencyLevel }
func (c *Case) AISummary() string              { return c.aiSummary }
func (c *Case) StructuredData() StructuredData { return c.structuredData }
func (c *Case) Rationale() string              { return c.rationale }
func (c *Case) RecommendedAction() string      { return c.recommended }
func (c *Case) Status() vo.CaseStatus          { return c.status }
func (c *Case) ClinicianNotes() string         { return c.clinicianNotes }
func (c *Case) StaffOverride() bool            { return c.staffOverride }
func (c *Case) OverrideReason() string         { return c.overrideReason }
func (c *Case) ResolvedAt() *time.Time         { return c.resolvedAt }
func (c *Case) Version() int                   { return c.version }
func (c *Case) CreatedAt() time.Time           { return c.createdAt }
func (c *Case) UpdatedAt() time.Time           { return c.updatedAt }

func (c *Case) RedFlags() []string {
	flagsCopy := make([]string, len(c.redFlags))
	copy(flagsCopy, c.redFlags)
	return flagsCopy
}

// Priority returns the queue ordering weight of the case's urgency.
func (c *Case) Priority() int {
	return c.urgencyLevel.Priority()
}

func (c *Case) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Case) SetNumber(number string) error {
	if len(c.number) > 0 {
		return fmt.Errorf("case number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("case number cannot be empty")
	}
	c.number = number
	return nil
}

// ChangeStatus moves the case through the forward-only state machine.
// Transitioning into RESOLVED stamps resolvedAt exactly once; no other
// transition touches it.
func (c *Case) ChangeStatus(newStatus vo.CaseStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if c.status == newStatus {
		return nil
	}

	if !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", c.status, newStatus)
	}

	c.status = newStatus
	c.updatedAt = time.Now()
	c.version++

	if newStatus.IsResolved() && c.resolvedAt == nil {
		now := time.Now()
		c.resolvedAt = &now
	}

	return nil
}

func (c *Case) SetClinicianNotes(notes string) {
	c.clinicianNotes = notes
	c.updatedAt = time.Now()
	c.version++
}

// OverrideUrgency records a staff correction of the AI classification.
// The reason is mandatory: the override is an audited clinical decision.
func (c *Case) OverrideUrgency(newLevel vo.UrgencyLevel, reason string) error {
	if !newLevel.IsValid() {
		return fmt.Errorf("invalid urgency level: %s", newLevel)
	}
	if len(strings.TrimSpace(reason)) == 0 {
		return fmt.Errorf("override reason is required")
	}

	c.urgencyLevel = newLevel
	c.staffOverride = true
	c.overrideReason = reason
	c.updatedAt = time.Now()
	c.version++

	return nil
}

// CanBeViewedBy implements the access asymmetry: patients see only their own
// cases, staff and admin see everything.
func (c *Case) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	if role.IsStaff() || role.IsAdmin() {
		return true
	}
	return c.patientID == userID
}
