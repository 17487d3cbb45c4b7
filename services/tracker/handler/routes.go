package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatchtrack/internal/pkg/health"
	"github.com/fleetops/dispatchtrack/internal/pkg/middleware"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	"github.com/fleetops/dispatchtrack/services/tracker"
	httpHandler "github.com/fleetops/dispatchtrack/services/tracker/handler/http"
)

// HTTPHandler combines all handlers for the tracker agent
type HTTPHandler struct {
	trackerHTTP *httpHandler.TrackerHandler
	cfg         *models.Config
	checkers    []health.HealthChecker
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(
	trackerUC tracker.TrackerUC,
	cache tracker.CacheRepo,
	cfg *models.Config,
	checkers ...health.HealthChecker,
) *HTTPHandler {
	return &HTTPHandler{
		trackerHTTP: httpHandler.NewTrackerHandler(trackerUC, cache),
		cfg:         cfg,
		checkers:    checkers,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.PanicRecovery())

	e.GET("/ping", health.NewPingHandler(h.cfg.App.Name))
	e.GET("/health", health.NewHealthHandler(h.checkers...))

	// Console routes (API key required when configured)
	api := e.Group("/v1", middleware.RequireAPIKey(h.cfg.Server.APIKey))

	api.POST("/tracker/sessions", h.trackerHTTP.StartSession)
	api.DELETE("/tracker/sessions/:tripID", h.trackerHTTP.StopSession)
	api.GET("/tracker/sessions/:tripID", h.trackerHTTP.GetSessionStatus)

	api.GET("/tracker/trips", h.trackerHTTP.GetActiveTrips)
	api.GET("/tracker/trips/:tripID/progress", h.trackerHTTP.GetTripProgress)
	api.POST("/tracker/trips/:tripID/optimize", h.trackerHTTP.OptimizeRoute)
	api.GET("/tracker/trips/:tripID/position", h.trackerHTTP.GetLastPosition)
	api.GET("/tracker/trips/:tripID/history", h.trackerHTTP.GetPositionHistory)
}
