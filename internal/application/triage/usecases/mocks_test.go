package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"triagedesk/internal/application/triage/classify"
	"triagedesk/internal/domain/triage"
	"triagedesk/internal/infrastructure/ratelimit"
	"triagedesk/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

type mockCaseRepository struct {
	mock.Mock
}

func (m *mockCaseRepository) Save(ctx context.Context, c *triage.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCaseRepository) Update(ctx context.Context, c *triage.Case, expectedVersion int) error {
	args := m.Called(ctx, c, expectedVersion)
	return args.Error(0)
}

func (m *mockCaseRepository) GetByID(ctx context.Context, caseID uint) (*triage.Case, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triage.Case), args.Error(1)
}

func (m *mockCaseRepository) GetByNumber(ctx context.Context, number string) (*triage.Case, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triage.Case), args.Error(1)
}

func (m *mockCaseRepository) List(ctx context.Context, filter triage.CaseFilter) ([]*triage.Case, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*triage.Case), args.Get(1).(int64), args.Error(2)
}

type mockAIOutputRepository struct {
	mock.Mock
}

func (m *mockAIOutputRepository) Save(ctx context.Context, output *triage.AIOutput) error {
	args := m.Called(ctx, output)
	return args.Error(0)
}

func (m *mockAIOutputRepository) GetByCaseID(ctx context.Context, caseID uint) (*triage.AIOutput, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triage.AIOutput), args.Error(1)
}

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, narrative string) (*classify.Result, error) {
	args := m.Called(ctx, narrative)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classify.Result), args.Error(1)
}

type mockTranscriber struct {
	mock.Mock
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	args := m.Called(ctx, audio, mimeType)
	return args.String(0), args.Error(1)
}

type mockNumberGenerator struct {
	mock.Mock
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// mockTxManager runs the callback inline so repository expectations fire.
type mockTxManager struct {
	failWith error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.failWith != nil {
		return m.failWith
	}
	return fn(ctx)
}

type mockNotifier struct {
	notified []*triage.Case
}

func (m *mockNotifier) NotifyEmergency(c *triage.Case) {
	m.notified = append(m.notified, c)
}

type mockRateLimiter struct {
	allowed       bool
	err           error
	keys          []string
	remaining     int64
	remainingKeys []string
}

func (m *mockRateLimiter) Allow(key string, limits ratelimit.SubmissionLimits) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowed, m.err
}

func (m *mockRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	m.remainingKeys = append(m.remainingKeys, key)
	return m.remaining, nil
}
