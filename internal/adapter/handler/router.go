package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	"github.com/mindvoice-team/mindvoice-backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	auth              *middleware.AuthMiddleware
	authHandler       *Auth
	transcribeHandler *Transcribe
	analysisHandler   *Analysis
	assessmentHandler *Assessment
	journalHandler    *Journal
	dashboardHandler  *Dashboard
	exportHandler     *Export
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	auth *middleware.AuthMiddleware,
	authHandler *Auth,
	transcribeHandler *Transcribe,
	analysisHandler *Analysis,
	assessmentHandler *Assessment,
	journalHandler *Journal,
	dashboardHandler *Dashboard,
	exportHandler *Export,
) *Router {
	return &Router{
		cfg:               cfg,
		auth:              auth,
		authHandler:       authHandler,
		transcribeHandler: transcribeHandler,
		analysisHandler:   analysisHandler,
		assessmentHandler: assessmentHandler,
		journalHandler:    journalHandler,
		dashboardHandler:  dashboardHandler,
		exportHandler:     exportHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// The recording widget talks to these two directly; they keep
	// their own envelope and live outside the versioned API.
	e.POST("/api/transcribe", rt.transcribeHandler.Handle)
	e.GET("/api/health", rt.transcribeHandler.Health)

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupAnalysisRoutes(v1)
	rt.setupAssessmentRoutes(v1)
	rt.setupJournalRoutes(v1)
	rt.setupDashboardRoutes(v1)
}

// setupAuthRoutes configures account and session routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/logout", rt.authHandler.Logout, rt.auth.Authenticate)
	authGroup.GET("/me", rt.authHandler.Me, rt.auth.Authenticate)

	userGroup := g.Group("/users/me", rt.auth.Authenticate)
	userGroup.PATCH("/profile", rt.authHandler.UpdateProfile)
	userGroup.PUT("/preferences", rt.authHandler.SavePreferences)
	userGroup.PUT("/privacy", rt.authHandler.SavePrivacySettings)
	userGroup.POST("/password", rt.authHandler.ChangePassword)
	userGroup.DELETE("", rt.authHandler.DeleteAccount)

	exportGroup := g.Group("/export", rt.auth.Authenticate)
	exportGroup.GET("/:scope", rt.exportHandler.Download)
}

// setupAnalysisRoutes configures voice-analysis routes
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	analysisGroup := g.Group("/analysis", rt.auth.Authenticate)
	analysisGroup.POST("", rt.analysisHandler.Analyze)
	analysisGroup.GET("/history", rt.analysisHandler.History)
	analysisGroup.DELETE("/history", rt.analysisHandler.ClearHistory)
}

// setupAssessmentRoutes configures screening questionnaire routes
func (rt *Router) setupAssessmentRoutes(g *echo.Group) {
	assessmentGroup := g.Group("/assessment")
	assessmentGroup.GET("/questions", rt.assessmentHandler.Questions)
	assessmentGroup.POST("/complete", rt.assessmentHandler.Complete, rt.auth.Authenticate)
	assessmentGroup.GET("/result", rt.assessmentHandler.Result, rt.auth.Authenticate)
}

// setupJournalRoutes configures journal routes
func (rt *Router) setupJournalRoutes(g *echo.Group) {
	journalGroup := g.Group("/journal", rt.auth.Authenticate)
	journalGroup.POST("/entries", rt.journalHandler.CreateEntry)
	journalGroup.POST("/voice-notes", rt.journalHandler.CreateVoiceNote)
	journalGroup.GET("/entries", rt.journalHandler.List)
	journalGroup.GET("/insights", rt.journalHandler.Insights)
}

// setupDashboardRoutes configures dashboard routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	dashboardGroup := g.Group("/dashboard", rt.auth.Authenticate)
	dashboardGroup.GET("/overview", rt.dashboardHandler.Overview)
	dashboardGroup.GET("/trend", rt.dashboardHandler.Trend)
}
