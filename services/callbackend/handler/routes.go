package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/middleware"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/callbackend"
	httpHandler "github.com/piresc/wakestop/services/callbackend/handler/http"
)

// Handler combines all handlers for the call backend
type Handler struct {
	callHTTP *httpHandler.CallHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(callUC callbackend.CallUC, cfg *models.Config) *Handler {
	return &Handler{
		callHTTP: httpHandler.NewCallHandler(callUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	v1.POST("/calls", h.callHTTP.PlaceCall)
}
