package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatchtrack/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the console's API key
	APIKeyHeader = "X-API-Key"
)

// RequireAPIKey validates the API key on console-to-agent requests.
// An empty configured key disables the check (local development).
func RequireAPIKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if configuredKey == "" {
				return next(c)
			}

			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
