package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/boleias/internal/pkg/jwt"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/utils"
)

const authContextKey = "auth_context"

// CoordinatorAuthMiddleware validates the coordinator bearer token and stores
// the resulting AuthContext on the echo context.
func CoordinatorAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			auth := claims.AuthContext()
			c.Set(authContextKey, auth)
			c.Set(logger.ActorKey, "coordinator:"+auth.CoordinatorName)

			return next(c)
		}
	}
}

// AuthFromContext returns the caller's claim, defaulting to a public caller
func AuthFromContext(c echo.Context) models.AuthContext {
	if auth, ok := c.Get(authContextKey).(models.AuthContext); ok {
		return auth
	}
	return models.PublicAuth()
}

// SetAuthContext stores a claim on the echo context; handler tests use it to skip token parsing
func SetAuthContext(c echo.Context, auth models.AuthContext) {
	c.Set(authContextKey, auth)
}
