package usecases

import (
	"context"

	"triagedesk/internal/domain/triage"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// GetCaseCommand identifies the case and the requesting user. The case is
// addressed by ID, or by its human-readable number when CaseID is zero.
type GetCaseCommand struct {
	CaseID     uint
	CaseNumber string
	UserID     uint
	Role       authorization.UserRole
}

// GetCaseUseCase returns one case. Patients only see their own cases; the
// lookup answers 404 rather than 403 so case IDs are not probeable. Staff
// additionally get the classification audit record.
type GetCaseUseCase struct {
	caseRepo   triage.CaseRepository
	outputRepo triage.AIOutputRepository
	logger     logger.Interface
}

func NewGetCaseUseCase(caseRepo triage.CaseRepository, outputRepo triage.AIOutputRepository, logger logger.Interface) *GetCaseUseCase {
	return &GetCaseUseCase{
		caseRepo:   caseRepo,
		outputRepo: outputRepo,
		logger:     logger,
	}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, cmd GetCaseCommand) (*CaseDetailResult, error) {
	var (
		c   *triage.Case
		err error
	)
	switch {
	case cmd.CaseID != 0:
		c, err = uc.caseRepo.GetByID(ctx, cmd.CaseID)
	case cmd.CaseNumber != "":
		c, err = uc.caseRepo.GetByNumber(ctx, cmd.CaseNumber)
	default:
		return nil, errors.NewValidationError("case ID is required")
	}
	if err != nil {
		return nil, err
	}

	if !c.CanBeViewedBy(cmd.UserID, cmd.Role) {
		uc.logger.Warnw("case access denied",
			"case_id", cmd.CaseID,
			"user_id", cmd.UserID,
			"role", cmd.Role.String(),
		)
		return nil, errors.NewNotFoundError("case not found")
	}

	result := &CaseDetailResult{CaseResult: *newCaseResult(c)}

	if cmd.Role.CanReviewCases() {
		output, err := uc.outputRepo.GetByCaseID(ctx, c.ID())
		if err != nil {
			// The case itself is the payload; a missing audit row is logged,
			// not surfaced.
			uc.logger.Warnw("audit record lookup failed",
				"case_id", c.ID(),
				"error", err,
			)
		} else {
			result.AIOutput = newAIOutputResult(output)
		}
	}

	return result, nil
}
