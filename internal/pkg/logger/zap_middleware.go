package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ActorKey is the echo context key holding the authenticated actor name
const ActorKey = "actor"

// ZapEchoMiddleware creates middleware for Echo framework using Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if requestID != "" {
				c.SetRequest(c.Request().WithContext(ContextWithRequestID(c.Request().Context(), requestID)))
			}

			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is the real one
				c.Error(err)
			}

			if raw != "" {
				path = path + "?" + raw
			}

			actor := "anonymous"
			if v, ok := c.Get(ActorKey).(string); ok && v != "" {
				actor = v
			}

			logger.LogHTTPRequest(c.Request().Method, path, c.RealIP(), actor, requestID,
				c.Response().Status, time.Since(start), err)

			return nil
		}
	}
}
