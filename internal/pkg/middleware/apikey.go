package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for service-to-service communication
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates a new API key middleware from config
func NewAPIKeyMiddleware(cfg *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		keys: map[string]string{
			"dispatch-service": cfg.DispatchService,
			"fleet-service":    cfg.FleetService,
		},
	}
}

// Handler returns a middleware that accepts requests carrying a valid key
// for any of the allowed services
func (m *APIKeyMiddleware) Handler(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, service := range allowedServices {
				known := m.keys[service]
				if known != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(known)) == 1 {
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
