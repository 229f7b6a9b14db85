package usecases

import (
	"context"

	"triagedesk/internal/application/triage/classify"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

// TranscribeAudioCommand carries a symptom recording.
type TranscribeAudioCommand struct {
	Audio    []byte
	MIMEType string
}

// TranscribeAudioResult is the text the patient can review before submitting.
type TranscribeAudioResult struct {
	Transcript string `json:"transcript"`
}

// TranscribeAudioUseCase converts a voice recording to text. The transcript
// is returned to the patient for confirmation; it is not yet a case.
type TranscribeAudioUseCase struct {
	transcriber classify.Transcriber
	logger      logger.Interface
}

func NewTranscribeAudioUseCase(transcriber classify.Transcriber, logger logger.Interface) *TranscribeAudioUseCase {
	return &TranscribeAudioUseCase{
		transcriber: transcriber,
		logger:      logger,
	}
}

func (uc *TranscribeAudioUseCase) Execute(ctx context.Context, cmd TranscribeAudioCommand) (*TranscribeAudioResult, error) {
	if len(cmd.Audio) == 0 {
		return nil, errors.NewValidationError("audio data is required")
	}

	transcript, err := uc.transcriber.Transcribe(ctx, cmd.Audio, cmd.MIMEType)
	if err != nil {
		uc.logger.Errorw("transcription failed", "mime_type", cmd.MIMEType, "error", err)
		return nil, err
	}

	uc.logger.Infow("audio transcribed", "mime_type", cmd.MIMEType, "transcript_length", len(transcript))

	return &TranscribeAudioResult{Transcript: transcript}, nil
}
