package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triagedesk/internal/interfaces/http/middleware"
	"triagedesk/internal/interfaces/http/routes"
)

// SetupRoutes installs global middleware and all route groups on the
// container's engine.
func (c *Container) SetupRoutes() {
	if c.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestLogger(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		sqlDB, err := c.db.DB()
		if err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := c.engine.Group("/api")

	routes.SetupAuthRoutes(api, c.authHandler)
	routes.SetupUserRoutes(api, c.profileHandler, c.authMiddleware)
	routes.SetupTriageRoutes(api, &routes.TriageRouteConfig{
		TriageHandler:  c.triageHandler,
		CaseHandler:    c.caseHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
