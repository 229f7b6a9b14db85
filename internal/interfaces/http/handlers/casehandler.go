package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"triagedesk/internal/application/triage/usecases"
	"triagedesk/internal/shared/authorization"
	"triagedesk/internal/shared/errors"
	"triagedesk/internal/shared/logger"
	"triagedesk/internal/shared/utils"
)

type CaseHandler struct {
	getCaseUC    usecases.GetCaseExecutor
	listCasesUC  usecases.ListCasesExecutor
	updateCaseUC usecases.UpdateCaseExecutor
	logger       logger.Interface
}

func NewCaseHandler(
	getCaseUC usecases.GetCaseExecutor,
	listCasesUC usecases.ListCasesExecutor,
	updateCaseUC usecases.UpdateCaseExecutor,
) *CaseHandler {
	return &CaseHandler{
		getCaseUC:    getCaseUC,
		listCasesUC:  listCasesUC,
		updateCaseUC: updateCaseUC,
		logger:       logger.NewLogger(),
	}
}

type UpdateCaseRequest struct {
	Status          *string `json:"status"`
	ClinicianNotes  *string `json:"clinician_notes"`
	OverrideUrgency *string `json:"override_urgency"`
	OverrideReason  string  `json:"override_reason"`
}

func parseCaseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid case ID")
	}
	return uint(id), nil
}

func callerIdentity(c *gin.Context) (uint, authorization.UserRole) {
	return c.GetUint("user_id"), authorization.ParseUserRole(c.GetString("user_role"))
}

// List returns the review queue for staff, or the caller's own cases for
// patients.
func (h *CaseHandler) List(c *gin.Context) {
	userID, role := callerIdentity(c)

	cmd := usecases.ListCasesCommand{
		UserID: userID,
		Role:   role,
	}
	if status := c.Query("status"); status != "" {
		cmd.Status = &status
	}
	if urgency := c.Query("urgency"); urgency != "" {
		cmd.Urgency = &urgency
	}
	if raw := c.Query("patient_id"); raw != "" {
		patientID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid patient_id filter"))
			return
		}
		id := uint(patientID)
		cmd.PatientID = &id
	}

	result, err := h.listCasesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cases, result.Total)
}

// Get fetches one case by numeric ID, or by its case number (staff read
// them off the queue) when the path segment is not numeric.
func (h *CaseHandler) Get(c *gin.Context) {
	userID, role := callerIdentity(c)

	cmd := usecases.GetCaseCommand{
		UserID: userID,
		Role:   role,
	}

	param := c.Param("id")
	if id, err := strconv.ParseUint(param, 10, 32); err == nil && id != 0 {
		cmd.CaseID = uint(id)
	} else if strings.HasPrefix(param, "TRI-") {
		cmd.CaseNumber = param
	} else {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid case ID"))
		return
	}

	result, err := h.getCaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update applies staff actions: status transitions, clinician notes and
// urgency overrides.
func (h *CaseHandler) Update(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, req)
		return
	}

	userID, role := callerIdentity(c)

	result, err := h.updateCaseUC.Execute(c.Request.Context(), usecases.UpdateCaseCommand{
		CaseID:          caseID,
		UserID:          userID,
		Role:            role,
		Status:          req.Status,
		ClinicianNotes:  req.ClinicianNotes,
		OverrideUrgency: req.OverrideUrgency,
		OverrideReason:  req.OverrideReason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case updated successfully", result)
}
