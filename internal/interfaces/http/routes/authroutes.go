package routes

import (
	"github.com/gin-gonic/gin"

	"triagedesk/internal/interfaces/http/handlers"
)

// SetupAuthRoutes configures account registration and login.
func SetupAuthRoutes(api *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}
