package usecases

import (
	"context"

	"triagedesk/internal/domain/triage"
	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// UpdateCaseCommand carries the staff actions applied in one request. Nil
// fields are left untouched.
type UpdateCaseCommand struct {
	CaseID          uint
	UserID          uint
	Role            authorization.UserRole
	Status          *string
	ClinicianNotes  *string
	OverrideUrgency *string
	OverrideReason  string
}

// UpdateCaseUseCase applies status changes, clinician notes and urgency
// overrides. Persistence uses an optimistic version check so two staff
// members editing the same case cannot silently overwrite each other.
type UpdateCaseUseCase struct {
	caseRepo triage.CaseRepository
	logger   logger.Interface
}

func NewUpdateCaseUseCase(caseRepo triage.CaseRepository, logger logger.Interface) *UpdateCaseUseCase {
	return &UpdateCaseUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *UpdateCaseUseCase) Execute(ctx context.Context, cmd UpdateCaseCommand) (*CaseResult, error) {
	uc.logger.Infow("executing update case use case", "case_id", cmd.CaseID, "user_id", cmd.UserID)

	if cmd.CaseID == 0 {
		return nil, errors.NewValidationError("case ID is required")
	}
	if !cmd.Role.CanReviewCases() {
		return nil, errors.NewForbiddenError("staff access required")
	}
	if cmd.Status == nil && cmd.ClinicianNotes == nil && cmd.OverrideUrgency == nil {
		return nil, errors.NewValidationError("no changes requested")
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, err
	}

	loadedVersion := c.Version()

	if cmd.OverrideUrgency != nil {
		newLevel, err := vo.NewUrgencyLevel(*cmd.OverrideUrgency)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := c.OverrideUrgency(newLevel, cmd.OverrideReason); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ClinicianNotes != nil {
		c.SetClinicianNotes(*cmd.ClinicianNotes)
	}

	if cmd.Status != nil {
		newStatus, err := vo.NewCaseStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := c.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.caseRepo.Update(ctx, c, loadedVersion); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	uc.logger.Infow("case updated",
		"case_id", c.ID(),
		"status", c.Status().String(),
		"urgency", c.UrgencyLevel().String(),
		"override", c.StaffOverride(),
	)

	return newCaseResult(c), nil
}
