package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/wakestop/internal/pkg/context"
)

// RequestIDMiddleware propagates X-Request-ID or generates a new one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(appctx.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
