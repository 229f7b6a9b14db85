package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triagedesk/internal/application/user/usecases"
	"triagedesk/internal/shared/logger"
	"triagedesk/internal/shared/utils"
)

type ProfileHandler struct {
	getProfileUC    usecases.GetProfileExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	logger          logger.Interface
}

func NewProfileHandler(getProfileUC usecases.GetProfileExecutor, updateProfileUC usecases.UpdateProfileExecutor) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		logger:          logger.NewLogger(),
	}
}

type UpdateProfileRequest struct {
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, req)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:      c.GetUint("user_id"),
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}
