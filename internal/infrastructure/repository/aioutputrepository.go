package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"triagedesk/internal/domain/triage"
	"triagedesk/internal/infrastructure/persistence/mappers"
	"triagedesk/internal/infrastructure/persistence/models"
	"triagedesk/internal/shared/db"
	"triagedesk/internal/shared/errors"
)

type AIOutputRepository struct {
	db     *gorm.DB
	mapper mappers.AIOutputMapper
}

var _ triage.AIOutputRepository = (*AIOutputRepository)(nil)

func NewAIOutputRepository(gdb *gorm.DB) *AIOutputRepository {
	return &AIOutputRepository{
		db:     gdb,
		mapper: mappers.NewAIOutputMapper(),
	}
}

func (r *AIOutputRepository) Save(ctx context.Context, output *triage.AIOutput) error {
	model := r.mapper.ToModel(output)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save AI output: %w", err)
	}

	return output.SetID(model.ID)
}

func (r *AIOutputRepository) GetByCaseID(ctx context.Context, caseID uint) (*triage.AIOutput, error) {
	var model models.AIOutputModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("case_id = ?", caseID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("AI output not found for case")
		}
		return nil, fmt.Errorf("failed to find AI output: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
