package usecases

import (
	"context"
	"time"

	"triagedesk/internal/domain/triage"
	"triagedesk/internal/infrastructure/ratelimit"
)

// CaseNumberGenerator issues the human-readable case number assigned at
// submission time.
type CaseNumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EmergencyNotifier alerts the care team about an emergency case. Delivery
// is best effort and must never fail the submission.
type EmergencyNotifier interface {
	NotifyEmergency(c *triage.Case)
}

// SubmissionRateLimiter bounds how often a patient can submit. GetRemaining
// reports the request count inside a window for denial diagnostics.
type SubmissionRateLimiter interface {
	Allow(key string, limits ratelimit.SubmissionLimits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
}

// SubmitTriageExecutor handles triage submissions.
type SubmitTriageExecutor interface {
	Execute(ctx context.Context, cmd SubmitTriageCommand) (*CaseResult, error)
}

// GetCaseExecutor retrieves a single case with access control.
type GetCaseExecutor interface {
	Execute(ctx context.Context, cmd GetCaseCommand) (*CaseDetailResult, error)
}

// ListCasesExecutor lists cases for the requesting user.
type ListCasesExecutor interface {
	Execute(ctx context.Context, cmd ListCasesCommand) (*ListCasesResult, error)
}

// UpdateCaseExecutor applies staff actions to a case.
type UpdateCaseExecutor interface {
	Execute(ctx context.Context, cmd UpdateCaseCommand) (*CaseResult, error)
}

// TranscribeAudioExecutor converts a symptom recording into text.
type TranscribeAudioExecutor interface {
	Execute(ctx context.Context, cmd TranscribeAudioCommand) (*TranscribeAudioResult, error)
}
