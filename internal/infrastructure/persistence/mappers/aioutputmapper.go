package mappers

import (
	"triagedesk/internal/domain/triage"
	"triagedesk/internal/infrastructure/persistence/models"
)

// AIOutputMapper converts between AIOutput audit records and persistence
// models.
type AIOutputMapper interface {
	ToModel(o *triage.AIOutput) *models.AIOutputModel
	ToDomain(model *models.AIOutputModel) (*triage.AIOutput, error)
}

type AIOutputMapperImpl struct{}

func NewAIOutputMapper() AIOutputMapper {
	return &AIOutputMapperImpl{}
}

func (m *AIOutputMapperImpl) ToModel(o *triage.AIOutput) *models.AIOutputModel {
	return &models.AIOutputModel{
		ID:           o.ID(),
		CaseID:       o.CaseID(),
		ModelUsed:    o.ModelUsed(),
		Prompt:       o.Prompt(),
		Response:     o.Response(),
		ProcessingMs: o.ProcessingMs(),
		CreatedAt:    o.CreatedAt().UnixMilli(),
	}
}

func (m *AIOutputMapperImpl) ToDomain(model *models.AIOutputModel) (*triage.AIOutput, error) {
	return triage.ReconstructAIOutput(
		model.ID,
		model.CaseID,
		model.ModelUsed,
		model.Prompt,
		model.Response,
		model.ProcessingMs,
		millisToTime(model.CreatedAt),
	)
}
