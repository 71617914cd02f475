package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/middleware"
	"github.com/piresc/wakestop/internal/pkg/models"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/internal/utils"
	"github.com/piresc/wakestop/services/tracker"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC tracker.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC tracker.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// StartTrip starts tracking a trip towards the requested destination
func (h *TripHandler) StartTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracker.StartTrip")

	userID := middleware.UserID(c)
	var req models.StartTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Destination == nil {
		return utils.BadRequestResponse(c, "Destination is required")
	}

	snap, err := h.tripUC.StartTrip(c.Request().Context(), userID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return errorResponse(c, err, "Failed to start trip")
	}

	logger.InfoCtx(c.Request().Context(), "Trip started",
		logger.String("trip_id", snap.TripID),
		logger.Float64("threshold_meters", snap.ThresholdMeters))

	return utils.SuccessResponse(c, http.StatusCreated, "Trip started successfully", snap)
}

// CancelTrip stops the current trip and withdraws pending alerts
func (h *TripHandler) CancelTrip(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracker.CancelTrip")

	snap, err := h.tripUC.CancelTrip(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return errorResponse(c, err, "Failed to cancel trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", snap)
}

// AcknowledgeArrival completes a trip after the alarm and makes room for the next one
func (h *TripHandler) AcknowledgeArrival(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracker.AcknowledgeArrival")

	snap, err := h.tripUC.AcknowledgeArrival(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return errorResponse(c, err, "Failed to acknowledge arrival")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", snap)
}

// GetCurrentTrip returns the latest snapshot of the caller's trip
func (h *TripHandler) GetCurrentTrip(c echo.Context) error {
	snap, err := h.tripUC.GetSnapshot(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err, "Failed to get trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snap)
}

// SetLifecycle records whether the app is in the foreground or background
func (h *TripHandler) SetLifecycle(c echo.Context) error {
	var req models.LifecycleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.tripUC.SetLifecycle(c.Request().Context(), middleware.UserID(c), req.State); err != nil {
		return errorResponse(c, err, "Failed to update app lifecycle")
	}
	return utils.SuccessResponse(c, http.StatusOK, "App lifecycle updated", req)
}

// ReportPosition accepts a position sample from clients that do not publish to NATS
func (h *TripHandler) ReportPosition(c echo.Context) error {
	var sample models.PositionSample
	if err := c.Bind(&sample); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	sample.UserID = middleware.UserID(c)
	if sample.Timestamp.IsZero() {
		sample.Timestamp = models.Now()
	}

	if err := h.tripUC.HandlePosition(c.Request().Context(), sample); err != nil {
		return errorResponse(c, err, "Failed to process position")
	}
	return c.NoContent(http.StatusAccepted)
}

// ReportPositionError accepts a sensing failure from clients that do not publish to NATS
func (h *TripHandler) ReportPositionError(c echo.Context) error {
	var perr models.PositionError
	if err := c.Bind(&perr); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	perr.UserID = middleware.UserID(c)
	if perr.Timestamp.IsZero() {
		perr.Timestamp = models.Now()
	}

	if err := h.tripUC.HandlePositionError(c.Request().Context(), perr); err != nil {
		return errorResponse(c, err, "Failed to process position error")
	}
	return c.NoContent(http.StatusAccepted)
}

// GetCallStats returns how many wake-up calls were placed for the caller
func (h *TripHandler) GetCallStats(c echo.Context) error {
	stats, err := h.tripUC.GetCallStats(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errorResponse(c, err, "Failed to get call stats")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}

func errorResponse(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, tracker.ErrMissingUser):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, tracker.ErrInvalidDestination),
		errors.Is(err, tracker.ErrInvalidThreshold),
		errors.Is(err, tracker.ErrInvalidLifecycle),
		errors.Is(err, tracker.ErrInvalidPosition):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, tracker.ErrNoActiveTrip):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, tracker.ErrTripAlreadyActive),
		errors.Is(err, tracker.ErrTripNotCompleted):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
		return utils.InternalServerErrorResponse(c, msg)
	}
}
