// Package ai implements symptom classification and audio transcription on
// the Gemini API.
package ai

import (
	"context"
	stderrors "errors"
	"time"

	"google.golang.org/genai"

	"triagedesk/internal/application/triage/classify"
	"triagedesk/internal/shared/config"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
)

const (
	defaultModel           = "gemini-2.5-flash"
	defaultTimeout         = 30 * time.Second
	defaultMaxOutputTokens = 2500

	// classifierTemperature is kept low for consistent assessments.
	classifierTemperature float32 = 0.2
)

// GeminiClassifier classifies symptom narratives with a Gemini model.
type GeminiClassifier struct {
	client          *genai.Client
	model           string
	timeout         time.Duration
	maxOutputTokens int32
	logger          logger.Interface
}

var _ classify.Classifier = (*GeminiClassifier)(nil)

// NewGeminiClient builds the shared SDK client. Fails fast when no API key
// is configured so the problem surfaces at startup, not on the first
// patient submission.
func NewGeminiClient(ctx context.Context, cfg *config.AIConfig) (*genai.Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.NewConfigurationError("AI API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create AI client", err.Error())
	}

	return client, nil
}

func NewGeminiClassifier(client *genai.Client, cfg *config.AIConfig, log logger.Interface) *GeminiClassifier {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	maxTokens := int32(defaultMaxOutputTokens)
	if cfg.MaxOutputTokens > 0 {
		maxTokens = int32(cfg.MaxOutputTokens)
	}

	return &GeminiClassifier{
		client:          client,
		model:           model,
		timeout:         timeout,
		maxOutputTokens: maxTokens,
		logger:          log,
	}
}

// Classify sends the narrative to the model and returns the validated
// assessment together with the audit fields persisted alongside the case.
func (c *GeminiClassifier) Classify(ctx context.Context, narrative string) (*classify.Result, error) {
	prompt := buildTriagePrompt(narrative)

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: triageSystemPrompt}},
		},
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(classifierTemperature),
		MaxOutputTokens:  c.maxOutputTokens,
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), genCfg)
	elapsed := time.Since(start)

	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			c.logger.Warnw("classification timed out",
				"model", c.model,
				"timeout", c.timeout,
			)
			return nil, errors.NewTransientError("classification timed out, please try again")
		}
		c.logger.Errorw("classification request failed",
			"model", c.model,
			"error", err,
			"duration_ms", elapsed.Milliseconds(),
		)
		return nil, mapUpstreamError("classification", err)
	}

	if resp == nil || resp.Text() == "" {
		return nil, errors.NewClassificationError("received empty response from classifier")
	}

	raw := resp.Text()
	assessment, err := parseAssessment(raw)
	if err != nil {
		c.logger.Errorw("unusable classifier response",
			"model", c.model,
			"error", err,
			"response_length", len(raw),
		)
		return nil, err
	}

	c.logger.Infow("narrative classified",
		"model", c.model,
		"urgency_level", assessment.UrgencyLevel().String(),
		"red_flag_count", len(assessment.RedFlags()),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &classify.Result{
		Assessment:     assessment,
		ModelUsed:      c.model,
		Prompt:         prompt,
		RawResponse:    raw,
		ProcessingTime: elapsed,
	}, nil
}
