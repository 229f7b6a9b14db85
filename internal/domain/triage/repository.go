package triage

import (
	"context"

	vo "triagedesk/internal/domain/triage/valueobjects"
)

// CaseFilter is the explicit filter configuration for case listings.
// Every field is exact-match; a nil field means no constraint.
type CaseFilter struct {
	Status       *vo.CaseStatus
	UrgencyLevel *vo.UrgencyLevel
	PatientID    *uint
}

type CaseRepository interface {
	Save(ctx context.Context, c *Case) error
	// Update persists a mutated case with an optimistic version check.
	// expectedVersion is the version the aggregate was loaded with; a row
	// that no longer carries it reports a conflict.
	Update(ctx context.Context, c *Case, expectedVersion int) error
	GetByID(ctx context.Context, caseID uint) (*Case, error)
	GetByNumber(ctx context.Context, number string) (*Case, error)
	// List returns cases matching the filter in reverse-chronological
	// order. Queue ranking is applied in memory by the caller.
	List(ctx context.Context, filter CaseFilter) ([]*Case, int64, error)
}

type AIOutputRepository interface {
	Save(ctx context.Context, output *AIOutput) error
	GetByCaseID(ctx context.Context, caseID uint) (*AIOutput, error)
}
