package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	triageUsecases "triagedesk/internal/application/triage/usecases"
	userUsecases "triagedesk/internal/application/user/usecases"
)

type mockSubmitTriage struct {
	mock.Mock
}

func (m *mockSubmitTriage) Execute(ctx context.Context, cmd triageUsecases.SubmitTriageCommand) (*triageUsecases.CaseResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triageUsecases.CaseResult), args.Error(1)
}

type mockGetCase struct {
	mock.Mock
}

func (m *mockGetCase) Execute(ctx context.Context, cmd triageUsecases.GetCaseCommand) (*triageUsecases.CaseDetailResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triageUsecases.CaseDetailResult), args.Error(1)
}

type mockListCases struct {
	mock.Mock
}

func (m *mockListCases) Execute(ctx context.Context, cmd triageUsecases.ListCasesCommand) (*triageUsecases.ListCasesResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triageUsecases.ListCasesResult), args.Error(1)
}

type mockUpdateCase struct {
	mock.Mock
}

func (m *mockUpdateCase) Execute(ctx context.Context, cmd triageUsecases.UpdateCaseCommand) (*triageUsecases.CaseResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triageUsecases.CaseResult), args.Error(1)
}

type mockTranscribeAudio struct {
	mock.Mock
}

func (m *mockTranscribeAudio) Execute(ctx context.Context, cmd triageUsecases.TranscribeAudioCommand) (*triageUsecases.TranscribeAudioResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*triageUsecases.TranscribeAudioResult), args.Error(1)
}

type mockRegister struct {
	mock.Mock
}

func (m *mockRegister) Execute(ctx context.Context, cmd userUsecases.RegisterCommand) (*userUsecases.UserResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userUsecases.UserResult), args.Error(1)
}

type mockLogin struct {
	mock.Mock
}

func (m *mockLogin) Execute(ctx context.Context, cmd userUsecases.LoginCommand) (*userUsecases.LoginResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userUsecases.LoginResult), args.Error(1)
}
