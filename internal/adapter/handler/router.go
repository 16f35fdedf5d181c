package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/infrastructure/http/middleware"
	"github.com/careerlink-team/career-portal/internal/usecase/auth"
	"github.com/careerlink-team/career-portal/pkg/config"
	pkgMiddleware "github.com/careerlink-team/career-portal/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	authService    *auth.Service
	authHandler    *Auth
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, authService *auth.Service, authHandler *Auth, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		authService:    authService,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/refresh", rt.authHandler.Refresh)

	authenticated := authGroup.Group("", middleware.EchoAuth(rt.authService))
	authenticated.POST("/logout", rt.authHandler.Logout)
	authenticated.GET("/me", rt.authHandler.Me)
}

// setupMeetingRoutes configures meeting routes. Everything requires an
// authenticated caller; acting on a specific meeting additionally requires
// being one of its participants, and hard delete is reserved for admins.
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings", middleware.EchoAuth(rt.authService))
	access := pkgMiddleware.RequireMeetingAccess(rt.meetingHandler.service)

	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get, access)
	meetings.PUT("/:id", rt.meetingHandler.Reschedule, access)
	meetings.PATCH("/:id/status", rt.meetingHandler.ChangeStatus, middleware.RequireRole(entities.RoleAdmin))
	meetings.POST("/:id/confirm", rt.meetingHandler.Confirm, middleware.RequireRole(entities.RoleAdmin))
	meetings.POST("/:id/complete", rt.meetingHandler.Complete, middleware.RequireRole(entities.RoleAdmin))
	meetings.POST("/:id/cancel", rt.meetingHandler.Cancel, access)
	meetings.POST("/:id/remind", rt.meetingHandler.Remind, middleware.RequireRole(entities.RoleAdmin))
	meetings.DELETE("/:id", rt.meetingHandler.Delete, middleware.RequireRole(entities.RoleAdmin))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := "development"
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
	})
}
