package usecases

import (
	"context"
	"fmt"
	"time"

	"triagedesk/internal/application/triage/classify"
	"triagedesk/internal/domain/triage"
	vo "triagedesk/internal/domain/triage/valueobjects"
	"triagedesk/internal/infrastructure/ratelimit"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// SubmitTriageCommand represents a patient symptom submission.
type SubmitTriageCommand struct {
	PatientID  uint
	RawInput   string
	InputType  string
	Transcript *string // required for voice submissions
}

// SubmitTriageUseCase runs the full submission pipeline: rate limit, narrative
// validation, AI classification, atomic persistence of the case plus its
// audit record, and the emergency alert.
type SubmitTriageUseCase struct {
	caseRepo    triage.CaseRepository
	outputRepo  triage.AIOutputRepository
	classifier  classify.Classifier
	numberGen   CaseNumberGenerator
	txManager   TransactionManager
	notifier    EmergencyNotifier
	rateLimiter SubmissionRateLimiter
	limits      ratelimit.SubmissionLimits
	logger      logger.Interface
}

func NewSubmitTriageUseCase(
	caseRepo triage.CaseRepository,
	outputRepo triage.AIOutputRepository,
	classifier classify.Classifier,
	numberGen CaseNumberGenerator,
	txManager TransactionManager,
	notifier EmergencyNotifier,
	rateLimiter SubmissionRateLimiter,
	limits ratelimit.SubmissionLimits,
	logger logger.Interface,
) *SubmitTriageUseCase {
	return &SubmitTriageUseCase{
		caseRepo:    caseRepo,
		outputRepo:  outputRepo,
		classifier:  classifier,
		numberGen:   numberGen,
		txManager:   txManager,
		notifier:    notifier,
		rateLimiter: rateLimiter,
		limits:      limits,
		logger:      logger,
	}
}

func (uc *SubmitTriageUseCase) Execute(ctx context.Context, cmd SubmitTriageCommand) (*CaseResult, error) {
	uc.logger.Infow("executing submit triage use case", "patient_id", cmd.PatientID, "input_type", cmd.InputType)

	if cmd.PatientID == 0 {
		return nil, errors.NewValidationError("patient ID is required")
	}

	inputType, err := vo.NewInputType(cmd.InputType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if inputType.IsVoice() && (cmd.Transcript == nil || *cmd.Transcript == "") {
		return nil, errors.NewValidationError("transcript is required for voice submissions")
	}

	if uc.rateLimiter != nil {
		key := fmt.Sprintf("triage:%d", cmd.PatientID)
		allowed, err := uc.rateLimiter.Allow(key, uc.limits)
		if err != nil {
			// The limiter backend being down should not block patients.
			uc.logger.Warnw("rate limiter unavailable, allowing submission", "error", err)
		} else if !allowed {
			used, rerr := uc.rateLimiter.GetRemaining(key, time.Minute)
			if rerr != nil {
				used = -1
			}
			uc.logger.Warnw("submission rate limit exceeded",
				"patient_id", cmd.PatientID,
				"minute_window_count", used,
			)
			return nil, errors.NewValidationError("too many submissions, please wait before trying again")
		}
	}

	narrative := cmd.RawInput
	if inputType.IsVoice() {
		narrative = *cmd.Transcript
	}
	narrative, err = triage.NormalizeNarrative(narrative)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	classification, err := uc.classifier.Classify(ctx, narrative)
	if err != nil {
		uc.logger.Errorw("classification failed", "patient_id", cmd.PatientID, "error", err)
		return nil, err
	}

	newCase, err := triage.NewCase(cmd.PatientID, cmd.RawInput, inputType, cmd.Transcript, classification.Assessment)
	if err != nil {
		uc.logger.Errorw("failed to create case entity", "error", err)
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	output, err := triage.NewAIOutput(
		classification.ModelUsed,
		classification.Prompt,
		classification.RawResponse,
		classification.ProcessingTime,
	)
	if err != nil {
		uc.logger.Errorw("failed to create AI output entity", "error", err)
		return nil, fmt.Errorf("failed to create AI output: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.numberGen.Generate(txCtx)
		if err != nil {
			return fmt.Errorf("failed to generate case number: %w", err)
		}
		if err := newCase.SetNumber(number); err != nil {
			return err
		}

		if err := uc.caseRepo.Save(txCtx, newCase); err != nil {
			return fmt.Errorf("failed to save case: %w", err)
		}

		if err := output.SetCaseID(newCase.ID()); err != nil {
			return err
		}
		if err := uc.outputRepo.Save(txCtx, output); err != nil {
			return fmt.Errorf("failed to save AI output: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to persist triage submission", "patient_id", cmd.PatientID, "error", err)
		return nil, err
	}

	if newCase.UrgencyLevel().IsEmergency() && uc.notifier != nil {
		uc.notifier.NotifyEmergency(newCase)
	}

	uc.logger.Infow("triage case created",
		"case_id", newCase.ID(),
		"case_number", newCase.Number(),
		"urgency", newCase.UrgencyLevel().String(),
	)

	return newCaseResult(newCase), nil
}
