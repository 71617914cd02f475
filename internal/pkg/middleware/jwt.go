package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/wakestop/internal/pkg/context"
	jwtpkg "github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware rejects requests without a valid bearer token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID.String())
			c.Set(ContextUserRole, claims.Role)
			c.SetRequest(c.Request().WithContext(appctx.WithUserID(c.Request().Context(), claims.UserID.String())))

			return next(c)
		}
	}
}

// UserID returns the authenticated user id, empty when the request is anonymous
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}
