package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatchtrack/internal/pkg/logger"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	"github.com/fleetops/dispatchtrack/internal/utils"
	"github.com/fleetops/dispatchtrack/services/tracker"
	"github.com/fleetops/dispatchtrack/services/tracker/positioning"
)

// TrackerHandler handles HTTP requests for tracking operations
type TrackerHandler struct {
	trackerUC tracker.TrackerUC
	cache     tracker.CacheRepo
	validate  *validator.Validate
}

// NewTrackerHandler creates a new tracker HTTP handler
func NewTrackerHandler(trackerUC tracker.TrackerUC, cache tracker.CacheRepo) *TrackerHandler {
	return &TrackerHandler{
		trackerUC: trackerUC,
		cache:     cache,
		validate:  validator.New(),
	}
}

// StartSession starts a live tracking session for a trip
func (h *TrackerHandler) StartSession(c echo.Context) error {
	var req models.StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	status, err := h.trackerUC.StartSession(c.Request().Context(), req.TripID)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrSessionActive):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, positioning.ErrPermissionDenied):
			return utils.ErrorResponseHandler(c, http.StatusForbidden, "location access denied on this device")
		default:
			logger.Error("Failed to start tracking session",
				logger.String("trip_id", req.TripID),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "failed to start tracking session")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Tracking session started", status)
}

// StopSession stops the live tracking session for a trip
func (h *TrackerHandler) StopSession(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	status, err := h.trackerUC.StopSession(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, tracker.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to stop tracking session",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to stop tracking session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking session stopped", status)
}

// GetSessionStatus returns the current session status for a trip
func (h *TrackerHandler) GetSessionStatus(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	status, err := h.trackerUC.SessionStatus(c.Request().Context(), tripID)
	if err != nil {
		if errors.Is(err, tracker.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to get session status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session status", status)
}

// GetTripProgress returns the derived progress view for a trip
func (h *TrackerHandler) GetTripProgress(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	progress, err := h.trackerUC.TripProgress(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Failed to derive trip progress",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to fetch tracking data")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip progress", progress)
}

// OptimizeRoute reorders the remaining stops of a trip
func (h *TrackerHandler) OptimizeRoute(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	progress, err := h.trackerUC.OptimizeRoute(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Route optimization failed",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "route optimization failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route optimized", progress)
}

// GetActiveTrips returns the dispatcher's active trips
func (h *TrackerHandler) GetActiveTrips(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	trips, err := h.trackerUC.ActiveTrips(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch active trips",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, "failed to fetch active trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active trips", trips)
}

// GetPositionHistory returns recent breadcrumb samples for a trip
func (h *TrackerHandler) GetPositionHistory(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	history, err := h.cache.GetHistory(c.Request().Context(), tripID, limit)
	if err != nil {
		logger.Error("Failed to fetch position history",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to fetch position history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position history", history)
}

// GetLastPosition returns the most recent cached position for a trip
func (h *TrackerHandler) GetLastPosition(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	sample, err := h.cache.GetLastPosition(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Failed to fetch last position",
			logger.String("trip_id", tripID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to fetch last position")
	}
	if sample == nil {
		return utils.NotFoundResponse(c, "no position cached for this trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Last position", sample)
}
