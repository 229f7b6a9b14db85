package routes

import (
	"github.com/gin-gonic/gin"

	"triagedesk/internal/interfaces/http/handlers"
	"triagedesk/internal/interfaces/http/middleware"
)

// SetupUserRoutes configures the authenticated profile routes.
func SetupUserRoutes(api *gin.RouterGroup, profileHandler *handlers.ProfileHandler, authMiddleware *middleware.AuthMiddleware) {
	users := api.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		users.GET("/me", profileHandler.GetProfile)
		users.PATCH("/me", profileHandler.UpdateProfile)
	}
}
