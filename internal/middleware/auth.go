package middleware

import (
	"crypto/subtle"
	"strings"

	"finance-agent-tools/internal/errors"
	"finance-agent-tools/internal/handlers"

	"github.com/labstack/echo/v4"
)

// RequireAgentToken creates a middleware that requires the agent runtime's
// static bearer token on tool endpoints. An empty configured token
// disables the check entirely, which is only sensible in development.
func RequireAgentToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			presented, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			return next(c)
		}
	}
}
