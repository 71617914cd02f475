package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/wakestop/internal/pkg/middleware"
	"github.com/piresc/wakestop/internal/pkg/models"
	natspkg "github.com/piresc/wakestop/internal/pkg/nats"
	wspkg "github.com/piresc/wakestop/internal/pkg/websocket"
	"github.com/piresc/wakestop/services/tracker"
	httpHandler "github.com/piresc/wakestop/services/tracker/handler/http"
	natsHandler "github.com/piresc/wakestop/services/tracker/handler/nats"
	wsHandler "github.com/piresc/wakestop/services/tracker/handler/websocket"
)

const (
	positionRateLimit  = 120
	positionRatePeriod = time.Minute
)

// Handler combines all handlers for the tracker service
type Handler struct {
	tripHTTP     *httpHandler.TripHandler
	locationNATS *natsHandler.LocationHandler
	tripStream   *wsHandler.TripStreamHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	tripUC tracker.TripUC,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *Handler {
	return &Handler{
		tripHTTP:     httpHandler.NewTripHandler(tripUC),
		locationNATS: natsHandler.NewLocationHandler(tripUC, natsClient, nrApp),
		tripStream:   wsHandler.NewTripStreamHandler(tripUC, wsManager),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. A nil redisClient disables rate limiting.
func (h *Handler) RegisterRoutes(e *echo.Echo, redisClient *redis.Client) {
	// the stream authenticates itself so browsers can pass the token as a query param
	e.GET("/v1/trips/current/ws", h.tripStream.StreamTrip)

	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	trips := v1.Group("/trips")
	trips.POST("", h.tripHTTP.StartTrip)
	trips.GET("/current", h.tripHTTP.GetCurrentTrip)
	trips.DELETE("/current", h.tripHTTP.CancelTrip)
	trips.POST("/current/acknowledge", h.tripHTTP.AcknowledgeArrival)

	v1.PUT("/app/lifecycle", h.tripHTTP.SetLifecycle)
	v1.GET("/stats", h.tripHTTP.GetCallStats)

	positions := v1.Group("/positions")
	if redisClient != nil {
		positions.Use(middleware.UserRateLimiter(positionRateLimit, positionRatePeriod, redisClient))
	}
	positions.POST("", h.tripHTTP.ReportPosition)
	positions.POST("/errors", h.tripHTTP.ReportPositionError)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.locationNATS.InitNATSConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.locationNATS.Close()
}
