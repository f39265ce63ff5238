package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/shuttletrack/internal/pkg/logger"
	"github.com/fleetops/shuttletrack/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, logs the stack
// trace and returns a 500 response instead of crashing the process
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zl.Error("Panic recovered",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
