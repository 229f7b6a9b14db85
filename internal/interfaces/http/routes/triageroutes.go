package routes

import (
	"github.com/gin-gonic/gin"

	"triagedesk/internal/interfaces/http/handlers"
	"triagedesk/internal/interfaces/http/middleware"
	"triagedesk/internal/shared/authorization"
)

// TriageRouteConfig holds dependencies for triage and case routes.
type TriageRouteConfig struct {
	TriageHandler  *handlers.TriageHandler
	CaseHandler    *handlers.CaseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTriageRoutes configures symptom submission and case review routes.
func SetupTriageRoutes(api *gin.RouterGroup, cfg *TriageRouteConfig) {
	triage := api.Group("/triage")
	triage.Use(cfg.AuthMiddleware.RequireAuth())
	{
		triage.POST("", cfg.TriageHandler.Submit)
		triage.POST("/transcribe", cfg.TriageHandler.Transcribe)
	}

	cases := api.Group("/cases")
	cases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cases.GET("", cfg.CaseHandler.List)
		cases.GET("/:id", cfg.CaseHandler.Get)
		cases.PATCH("/:id", authorization.RequireStaff(), cfg.CaseHandler.Update)
	}
}
