package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	pkgcontext "github.com/fleetops/shuttletrack/internal/pkg/context"
)

// RequestIDMiddleware ensures every request carries an X-Request-ID header,
// generating one when the caller did not supply it
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			ctx := pkgcontext.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
