package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"triagedesk/internal/application/triage/usecases"
	"triagedesk/internal/infrastructure/ai"
	"triagedesk/internal/shared/logger"
	"triagedesk/internal/shared/utils"
)

type TriageHandler struct {
	submitUC     usecases.SubmitTriageExecutor
	transcribeUC usecases.TranscribeAudioExecutor
	logger       logger.Interface
}

func NewTriageHandler(submitUC usecases.SubmitTriageExecutor, transcribeUC usecases.TranscribeAudioExecutor) *TriageHandler {
	return &TriageHandler{
		submitUC:     submitUC,
		transcribeUC: transcribeUC,
		logger:       logger.NewLogger(),
	}
}

type SubmitTriageRequest struct {
	Narrative  string  `json:"narrative" binding:"required"`
	InputType  string  `json:"input_type" binding:"required,oneof=text voice"`
	Transcript *string `json:"transcript"`
}

// Submit accepts a symptom narrative and returns the classified case.
func (h *TriageHandler) Submit(c *gin.Context) {
	var req SubmitTriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid triage submission body", "error", err)
		utils.BindingErrorResponse(c, req)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitTriageCommand{
		PatientID:  c.GetUint("user_id"),
		RawInput:   req.Narrative,
		InputType:  req.InputType,
		Transcript: req.Transcript,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Triage case created")
}

// Transcribe accepts a multipart upload under the "audio" field and returns
// the transcript for the patient to confirm before submitting.
func (h *TriageHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "audio file is required")
		return
	}
	if fileHeader.Size > ai.MaxAudioBytes {
		utils.ErrorResponse(c, http.StatusBadRequest, "audio file exceeds the 25MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded audio", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read audio file")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, ai.MaxAudioBytes+1))
	if err != nil {
		h.logger.Errorw("failed to read uploaded audio", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read audio file")
		return
	}
	if int64(len(audio)) > ai.MaxAudioBytes {
		utils.ErrorResponse(c, http.StatusBadRequest, "audio file exceeds the 25MB limit")
		return
	}

	result, err := h.transcribeUC.Execute(c.Request.Context(), usecases.TranscribeAudioCommand{
		Audio:    audio,
		MIMEType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
