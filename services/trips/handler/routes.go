package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetops/shuttletrack/internal/pkg/middleware"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
	httpHandler "github.com/fleetops/shuttletrack/services/trips/handler/http"
)

// Handler combines all handlers for the trips service
type Handler struct {
	tripsHTTP *httpHandler.TripsHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripsHTTP: httpHandler.NewTripsHandler(tripUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes. The driver app authenticates
// with a JWT; dispatch dashboards use the internal API-key surface.
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	driver := e.Group("/driver", middleware.JWTAuthMiddleware(h.cfg.JWT))
	driver.POST("/trips", h.tripsHTTP.StartTrip)
	driver.GET("/trips/:tripID", h.tripsHTTP.GetTrip)
	driver.POST("/trips/:tripID/locations", h.tripsHTTP.IngestLocation)
	driver.POST("/trips/:tripID/arrive", h.tripsHTTP.ArriveAtStop)
	driver.POST("/trips/:tripID/depart", h.tripsHTTP.DepartFromStop)
	driver.POST("/trips/:tripID/pause", h.tripsHTTP.EmergencyStop)
	driver.POST("/trips/:tripID/resume", h.tripsHTTP.ResumeTrip)
	driver.POST("/trips/:tripID/complete", h.tripsHTTP.CompleteTrip)

	internal := e.Group("/internal", apiKey.Handler("dispatch-service", "fleet-service"))
	internal.GET("/trips/:tripID", h.tripsHTTP.GetTrip)
	internal.POST("/trips/:tripID/cancel", h.tripsHTTP.CancelTrip)
	internal.GET("/analytics/summary", h.tripsHTTP.AnalyticsSummary)
}
