package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"triagedesk/internal/domain/triage"
	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
)

func queueTestCase(t *testing.T, id uint, level vo.UrgencyLevel, createdAt time.Time) *triage.Case {
	t.Helper()

	c, err := triage.ReconstructCase(
		id,
		"TRI-20260830-000"+string(rune('0'+id)),
		100+id,
		"symptom narrative long enough for the listing tests",
		vo.InputText,
		nil,
		level,
		"summary",
		triage.StructuredData{},
		[]string{},
		"rationale",
		"action",
		vo.StatusOpen,
		"",
		false,
		"",
		nil,
		1,
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return c
}

func TestListCases_StaffQueueRankedByUrgencyThenRecency(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	// Repository returns reverse-chronological order, not queue order.
	fromRepo := []*triage.Case{
		queueTestCase(t, 4, vo.UrgencySelfCare, base.Add(3*time.Hour)),
		queueTestCase(t, 3, vo.UrgencyEmergency, base.Add(2*time.Hour)),
		queueTestCase(t, 2, vo.UrgencyEmergency, base.Add(1*time.Hour)),
		queueTestCase(t, 1, vo.UrgencyUrgentVisit, base),
	}

	caseRepo := new(mockCaseRepository)
	caseRepo.On("List", mock.Anything, mock.Anything).Return(fromRepo, int64(4), nil)

	uc := NewListCasesUseCase(caseRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListCasesCommand{
		UserID: 50,
		Role:   authorization.RoleStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)
	gotIDs := make([]uint, 0, len(result.Cases))
	for _, c := range result.Cases {
		gotIDs = append(gotIDs, c.ID)
	}
	// Emergencies first (newest first within the tier), self-care last.
	assert.Equal(t, []uint{3, 2, 1, 4}, gotIDs)
}

func TestListCases_PatientScopedToOwnCases(t *testing.T) {
	caseRepo := new(mockCaseRepository)
	caseRepo.On("List", mock.Anything, mock.MatchedBy(func(filter triage.CaseFilter) bool {
		return filter.PatientID != nil && *filter.PatientID == 7
	})).Return([]*triage.Case{}, int64(0), nil)

	uc := NewListCasesUseCase(caseRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListCasesCommand{
		UserID: 7,
		Role:   authorization.RolePatient,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Cases)
	caseRepo.AssertExpectations(t)
}

func TestListCases_StaffFilterByOwner(t *testing.T) {
	owner := uint(7)

	caseRepo := new(mockCaseRepository)
	caseRepo.On("List", mock.Anything, mock.MatchedBy(func(filter triage.CaseFilter) bool {
		return filter.PatientID != nil && *filter.PatientID == 7
	})).Return([]*triage.Case{}, int64(0), nil)

	uc := NewListCasesUseCase(caseRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), ListCasesCommand{
		UserID:    50,
		Role:      authorization.RoleStaff,
		PatientID: &owner,
	})

	require.NoError(t, err)
	caseRepo.AssertExpectations(t)
}

func TestListCases_PatientCannotListOtherOwners(t *testing.T) {
	other := uint(99)

	caseRepo := new(mockCaseRepository)
	caseRepo.On("List", mock.Anything, mock.MatchedBy(func(filter triage.CaseFilter) bool {
		return filter.PatientID != nil && *filter.PatientID == 7
	})).Return([]*triage.Case{}, int64(0), nil)

	uc := NewListCasesUseCase(caseRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), ListCasesCommand{
		UserID:    7,
		Role:      authorization.RolePatient,
		PatientID: &other,
	})

	require.NoError(t, err)
	caseRepo.AssertExpectations(t)
}

func TestListCases_StatusAndUrgencyFilters(t *testing.T) {
	status := "OPEN"
	urgency := "EMERGENCY"

	caseRepo := new(mockCaseRepository)
	caseRepo.On("List", mock.Anything, mock.MatchedBy(func(filter triage.CaseFilter) bool {
		return filter.Status != nil && *filter.Status == vo.StatusOpen &&
			filter.UrgencyLevel != nil && *filter.UrgencyLevel == vo.UrgencyEmergency &&
			filter.PatientID == nil
	})).Return([]*triage.Case{}, int64(0), nil)

	uc := NewListCasesUseCase(caseRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), ListCasesCommand{
		UserID:  50,
		Role:    authorization.RoleStaff,
		Status:  &status,
		Urgency: &urgency,
	})

	require.NoError(t, err)
	caseRepo.AssertExpectations(t)
}

func TestListCases_InvalidFilters(t *testing.T) {
	badStatus := "ARCHIVED"
	badUrgency := "CRITICAL"

	tests := []struct {
		name string
		cmd  ListCasesCommand
	}{
		{
			name: "unknown status",
			cmd:  ListCasesCommand{UserID: 1, Role: authorization.RoleStaff, Status: &badStatus},
		},
		{
			name: "unknown urgency",
			cmd:  ListCasesCommand{UserID: 1, Role: authorization.RoleStaff, Urgency: &badUrgency},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewListCasesUseCase(new(mockCaseRepository), newTestLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
