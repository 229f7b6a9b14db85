package triage

import (
	"fmt"
	"time"
)

// AIOutput is the audit record of one classifier invocation. Immutable once
// written; one-to-one with the case it produced.
type AIOutput struct {
	id           uint
	caseID       uint
	modelUsed    string
	prompt       string
	response     string
	processingMs int64
	createdAt    time.Time
}

func NewAIOutput(modelUsed, prompt, response string, processingTime time.Duration) (*AIOutput, error) {
	if len(modelUsed) == 0 {
		return nil, fmt.Errorf("model name is required")
	}
	if len(prompt) == 0 {
		return nil, fmt.Errorf("prompt is required")
	}

	return &AIOutput{
		modelUsed:    modelUsed,
		prompt:       prompt,
		response:     response,
		processingMs: processingTime.Milliseconds(),
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAIOutput(
	id uint,
	caseID uint,
	modelUsed string,
	prompt string,
	response string,
	processingMs int64,
	createdAt time.Time,
) (*AIOutput, error) {
	if id == 0 {
		return nil, fmt.Errorf("AI output ID cannot be zero")
	}
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}

	return &AIOutput{
		id:           id,
		caseID:       caseID,
		modelUsed:    modelUsed,
		prompt:       prompt,
		response:     response,
		processingMs: processingMs,
		createdAt:    createdAt,
	}, nil
}

func (o *AIOutput) ID() uint             { return o.id }
func (o *AIOutput) CaseID() uint         { return o.caseID }
func (o *AIOutput) ModelUsed() string    { return o.modelUsed }
func (o *AIOutput) Prompt() string       { return o.prompt }
func (o *AIOutput) Response() string     { return o.response }
func (o *AIOutput) ProcessingMs() int64  { return o.processingMs }
func (o *AIOutput) CreatedAt() time.Time { return o.createdAt }

func (o *AIOutput) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("AI output ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("AI output ID cannot be zero")
	}
	o.id = id
	return nil
}

// SetCaseID binds the audit row to its case before the transactional write.
func (o *AIOutput) SetCaseID(caseID uint) error {
	if o.caseID != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if caseID == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	o.caseID = caseID
	return nil
}
