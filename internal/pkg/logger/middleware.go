package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs each HTTP request with latency and status code
func EchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				String("client_ip", c.RealIP()),
				String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case res.Status >= 500:
				zl.Error("HTTP request", fields...)
			case res.Status >= 400:
				zl.Warn("HTTP request", fields...)
			default:
				zl.Info("HTTP request", fields...)
			}

			return nil
		}
	}
}
