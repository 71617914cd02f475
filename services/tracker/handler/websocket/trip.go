package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/wakestop/internal/pkg/context"
	"github.com/piresc/wakestop/internal/pkg/logger"
	wspkg "github.com/piresc/wakestop/internal/pkg/websocket"
	"github.com/piresc/wakestop/services/tracker"
)

// TripStreamHandler streams trip snapshots to WebSocket clients
type TripStreamHandler struct {
	tripUC  tracker.TripUC
	manager *wspkg.Manager
}

// NewTripStreamHandler creates a new WebSocket handler
func NewTripStreamHandler(tripUC tracker.TripUC, manager *wspkg.Manager) *TripStreamHandler {
	return &TripStreamHandler{
		tripUC:  tripUC,
		manager: manager,
	}
}

// StreamTrip upgrades the request and pushes every snapshot of the caller's trip
func (h *TripStreamHandler) StreamTrip(c echo.Context) error {
	return h.manager.HandleConnection(c, func(client *wspkg.Client, conn *websocket.Conn) error {
		ctx := appctx.WithUserID(c.Request().Context(), client.UserID)

		snapshots, cancel, err := h.tripUC.Subscribe(ctx, client.UserID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to subscribe to trip snapshots", logger.Err(err))
			return h.manager.SendErrorMessage(conn, "subscribe_failed", err.Error())
		}
		defer cancel()

		logger.InfoCtx(ctx, "Trip stream opened",
			logger.Int("connections", h.manager.ActiveConnections(client.UserID)))
		return h.manager.StreamSnapshots(conn, client.UserID, snapshots)
	})
}
