package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatchtrack/internal/pkg/logger"
	"github.com/fleetops/dispatchtrack/internal/utils"
)

// PanicRecovery recovers from handler panics and returns a 500 response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic in handler",
						logger.String("path", c.Path()),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())))
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
