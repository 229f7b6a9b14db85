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

type CaseRepository struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
}

var _ triage.CaseRepository = (*CaseRepository)(nil)

func NewCaseRepository(gdb *gorm.DB) *CaseRepository {
	return &CaseRepository{
		db:     gdb,
		mapper: mappers.NewCaseMapper(),
	}
}

func (r *CaseRepository) Save(ctx context.Context, c *triage.Case) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save case: %w", err)
	}

	return c.SetID(model.ID)
}

// Update persists a mutated case guarded by an optimistic version check.
// The WHERE clause matches the version the aggregate was loaded with; zero
// rows affected means another reviewer got there first.
func (r *CaseRepository) Update(ctx context.Context, c *triage.Case, expectedVersion int) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}

	// Column map, not the struct: a struct update skips zero values, which
	// would silently drop clearing notes or an override reason to "".
	updates := map[string]interface{}{
		"urgency_level":   model.UrgencyLevel,
		"status":          model.Status,
		"clinician_notes": model.ClinicianNotes,
		"staff_override":  model.StaffOverride,
		"override_reason": model.OverrideReason,
		"resolved_at":     model.ResolvedAt,
		"version":         model.Version,
		"updated_at":      model.UpdatedAt,
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.CaseModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("case was modified by another user, please reload and retry")
	}

	return nil
}

func (r *CaseRepository) GetByID(ctx context.Context, caseID uint) (*triage.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, caseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("case not found")
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CaseRepository) GetByNumber(ctx context.Context, number string) (*triage.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("case not found")
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CaseRepository) List(ctx context.Context, filter triage.CaseFilter) ([]*triage.Case, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CaseModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.UrgencyLevel != nil {
		query = query.Where("urgency_level = ?", filter.UrgencyLevel.String())
	}
	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	var caseModels []models.CaseModel
	if err := query.Order("created_at DESC").Find(&caseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cases: %w", err)
	}

	cases := make([]*triage.Case, len(caseModels))
	for i, model := range caseModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		cases[i] = c
	}

	return cases, total, nil
}
