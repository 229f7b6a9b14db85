package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"triagedesk/internal/domain/triage"
	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/infrastructure/persistence/models"
)

// CaseMapper converts between Case domain entities and persistence models.
type CaseMapper interface {
	ToModel(c *triage.Case) (*models.CaseModel, error)
	ToDomain(model *models.CaseModel) (*triage.Case, error)
}

type CaseMapperImpl struct{}

func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

func (m *CaseMapperImpl) ToModel(c *triage.Case) (*models.CaseModel, error) {
	structuredJSON, err := json.Marshal(c.StructuredData())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal structured data: %w", err)
	}

	redFlagsJSON, err := json.Marshal(c.RedFlags())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal red flags: %w", err)
	}

	model := &models.CaseModel{
		ID:                c.ID(),
		Number:            c.Number(),
		PatientID:         c.PatientID(),
		RawInput:          c.RawInput(),
		InputType:         c.InputType().String(),
		Transcript:        c.Transcript(),
		UrgencyLevel:      c.UrgencyLevel().String(),
		AISummary:         c.AISummary(),
		StructuredData:    datatypes.JSON(structuredJSON),
		RedFlags:          datatypes.JSON(redFlagsJSON),
		Rationale:         c.Rationale(),
		RecommendedAction: c.RecommendedAction(),
		Status:            c.Status().String(),
		ClinicianNotes:    c.ClinicianNotes(),
		StaffOverride:     c.StaffOverride(),
		OverrideReason:    c.OverrideReason(),
		Version:           c.Version(),
		CreatedAt:         c.CreatedAt().UnixMilli(),
		UpdatedAt:         c.UpdatedAt().UnixMilli(),
	}

	if c.ResolvedAt() != nil {
		resolved := c.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model, nil
}

func (m *CaseMapperImpl) ToDomain(model *models.CaseModel) (*triage.Case, error) {
	inputType, err := vo.NewInputType(model.InputType)
	if err != nil {
		return nil, fmt.Errorf("invalid input type for case %d: %w", model.ID, err)
	}

	status, err := vo.NewCaseStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status for case %d: %w", model.ID, err)
	}

	urgency, err := vo.NewUrgencyLevel(model.UrgencyLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid urgency level for case %d: %w", model.ID, err)
	}

	var structured triage.StructuredData
	if len(model.StructuredData) > 0 {
		if err := json.Unmarshal(model.StructuredData, &structured); err != nil {
			return nil, fmt.Errorf("failed to unmarshal structured data for case %d: %w", model.ID, err)
		}
	}

	var redFlags []string
	if len(model.RedFlags) > 0 {
		if err := json.Unmarshal(model.RedFlags, &redFlags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal red flags for case %d: %w", model.ID, err)
		}
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := millisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	return triage.ReconstructCase(
		model.ID,
		model.Number,
		model.PatientID,
		model.RawInput,
		inputType,
		model.Transcript,
		urgency,
		model.AISummary,
		structured,
		redFlags,
		model.Rationale,
		model.RecommendedAction,
		status,
		model.ClinicianNotes,
		model.StaffOverride,
		model.OverrideReason,
		resolvedAt,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
