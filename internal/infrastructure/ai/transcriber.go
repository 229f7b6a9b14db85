package ai

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"google.golang.org/genai"

	"triagedesk/internal/application/triage/classify"
	"triagedesk/internal/shared/config"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

const defaultTranscribeModel = "gemini-2.5-flash"

// MaxAudioBytes caps uploaded recordings at 25MB.
const MaxAudioBytes = 25 * 1024 * 1024

var allowedAudioMIMETypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/mp4":  true,
	"audio/wav":  true,
	"audio/webm": true,
	"audio/ogg":  true,
	"audio/flac": true,
	"audio/aac":  true,
}

// IsAllowedAudioMIMEType reports whether the uploaded content type is an
// accepted audio format. Codec parameters after a semicolon are ignored.
func IsAllowedAudioMIMEType(mimeType string) bool {
	base := strings.TrimSpace(strings.ToLower(mimeType))
	if i := strings.Index(base, ";"); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	return allowedAudioMIMETypes[base]
}

// GeminiTranscriber converts patient voice recordings to text.
type GeminiTranscriber struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logger.Interface
}

var _ classify.Transcriber = (*GeminiTranscriber)(nil)

func NewGeminiTranscriber(client *genai.Client, cfg *config.AIConfig, log logger.Interface) *GeminiTranscriber {
	model := cfg.TranscribeModel
	if model == "" {
		model = defaultTranscribeModel
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &GeminiTranscriber{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}

func (t *GeminiTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", errors.NewValidationError("audio data is empty")
	}
	if len(audio) > MaxAudioBytes {
		return "", errors.NewValidationError("audio file exceeds the 25MB limit")
	}
	if !IsAllowedAudioMIMEType(mimeType) {
		return "", errors.NewValidationError("unsupported audio format", mimeType)
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: audio}},
			{Text: transcribePrompt},
		},
	}}

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	resp, err := t.client.Models.GenerateContent(callCtx, t.model, contents, nil)
	elapsed := time.Since(start)

	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			return "", errors.NewTransientError("transcription timed out, please try again")
		}
		t.logger.Errorw("transcription request failed",
			"model", t.model,
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
		)
		return "", mapUpstreamError("transcription", err)
	}

	transcript := ""
	if resp != nil {
		transcript = strings.TrimSpace(resp.Text())
	}
	if transcript == "" {
		return "", errors.NewClassificationError("received empty transcript from transcription service")
	}

	t.logger.Infow("audio transcribed",
		"model", t.model,
		"audio_bytes", len(audio),
		"transcript_length", len(transcript),
		"duration_ms", elapsed.Milliseconds(),
	)

	return transcript, nil
}
