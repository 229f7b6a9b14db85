package usecases

import (
	"context"
	"fmt"

	"triagedesk/internal/domain/triage"
	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// ListCasesCommand filters the case listing for the requesting user.
// PatientID is honored for staff only; patients are always scoped to
// their own cases.
type ListCasesCommand struct {
	UserID    uint
	Role      authorization.UserRole
	Status    *string
	Urgency   *string
	PatientID *uint
}

// ListCasesResult carries the listing plus the unfiltered match count.
type ListCasesResult struct {
	Cases []*CaseResult `json:"cases"`
	Total int64         `json:"total"`
}

// ListCasesUseCase lists cases. Staff get the review queue ranked by urgency
// tier then recency; patients get their own cases newest first.
type ListCasesUseCase struct {
	caseRepo triage.CaseRepository
	logger   logger.Interface
}

func NewListCasesUseCase(caseRepo triage.CaseRepository, logger logger.Interface) *ListCasesUseCase {
	return &ListCasesUseCase{
		caseRepo: caseRepo,
		logger:   logger,
	}
}

func (uc *ListCasesUseCase) Execute(ctx context.Context, cmd ListCasesCommand) (*ListCasesResult, error) {
	filter := triage.CaseFilter{}

	if cmd.Status != nil && *cmd.Status != "" {
		status, err := vo.NewCaseStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status filter: %s", *cmd.Status))
		}
		filter.Status = &status
	}
	if cmd.Urgency != nil && *cmd.Urgency != "" {
		urgency, err := vo.NewUrgencyLevel(*cmd.Urgency)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid urgency filter: %s", *cmd.Urgency))
		}
		filter.UrgencyLevel = &urgency
	}

	isStaff := cmd.Role.CanReviewCases()
	if isStaff {
		if cmd.PatientID != nil && *cmd.PatientID != 0 {
			filter.PatientID = cmd.PatientID
		}
	} else {
		patientID := cmd.UserID
		filter.PatientID = &patientID
	}

	cases, total, err := uc.caseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if isStaff {
		cases = triage.RankCases(cases)
	}

	results := make([]*CaseResult, 0, len(cases))
	for _, c := range cases {
		results = append(results, newCaseResult(c))
	}

	return &ListCasesResult{
		Cases: results,
		Total: total,
	}, nil
}
