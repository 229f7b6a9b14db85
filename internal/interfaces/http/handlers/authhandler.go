package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triagedesk/internal/application/user/usecases"
	"triagedesk/internal/shared/logger"
	"triagedesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	logger     logger.Interface
}

func NewAuthHandler(registerUC usecases.RegisterExecutor, loginUC usecases.LoginExecutor) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid register request body", "error", err)
		utils.BindingErrorResponse(c, req)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingErrorResponse(c, req)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
}
