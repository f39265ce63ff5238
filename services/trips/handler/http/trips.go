package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	pkgcontext "github.com/fleetops/shuttletrack/internal/pkg/context"
	"github.com/fleetops/shuttletrack/internal/pkg/logger"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/internal/utils"
	"github.com/fleetops/shuttletrack/services/trips"
)

// TripsHandler handles HTTP requests for trip operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

func tripIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("tripID"))
}

// StartTrip handles the trip start request
func (h *TripsHandler) StartTrip(c echo.Context) error {
	var req models.TripStartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.RouteID == uuid.Nil || req.VehicleID == uuid.Nil || req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "route_id, vehicle_id and driver_id are required")
	}
	if req.ScheduledStartAt.IsZero() {
		return utils.BadRequestResponse(c, "scheduled_start_at is required")
	}

	// A driver can only start trips as themselves
	if authID := pkgcontext.GetDriverID(c.Request().Context()); authID != uuid.Nil && authID != req.DriverID {
		return utils.UnauthorizedResponse(c, "Token does not match driver")
	}

	trip, err := h.tripUC.StartTrip(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Failed to start trip",
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip started successfully", trip)
}

// GetTrip handles the trip detail read model request
func (h *TripsHandler) GetTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	detail, err := h.tripUC.GetTripDetail(c.Request().Context(), tripID)
	if err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// ArriveAtStop handles a manual stop arrival
func (h *TripsHandler) ArriveAtStop(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.StopArriveRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RoutePointID == uuid.Nil {
		return utils.BadRequestResponse(c, "route_point_id is required")
	}

	stop, err := h.tripUC.ArriveAtStop(c.Request().Context(), tripID, req.RoutePointID)
	if err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stop arrival recorded", stop)
}

// DepartFromStop handles a stop departure with passenger counts
func (h *TripsHandler) DepartFromStop(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.StopDepartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RoutePointID == uuid.Nil {
		return utils.BadRequestResponse(c, "route_point_id is required")
	}
	if req.Boarded < 0 || req.Alighted < 0 {
		return utils.BadRequestResponse(c, "boarded and alighted must not be negative")
	}

	stop, err := h.tripUC.DepartFromStop(c.Request().Context(), tripID, req.RoutePointID, req.Boarded, req.Alighted)
	if err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stop departure recorded", stop)
}

// EmergencyStop handles the emergency pause request
func (h *TripsHandler) EmergencyStop(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.TripPauseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.tripUC.EmergencyStop(c.Request().Context(), tripID, req.Reason); err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip paused", nil)
}

// ResumeTrip handles the resume request after an emergency stop
func (h *TripsHandler) ResumeTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.ResumeTrip(c.Request().Context(), tripID); err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip resumed", nil)
}

// CompleteTrip handles the trip completion request
func (h *TripsHandler) CompleteTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.TripCompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CompleteTrip(c.Request().Context(), tripID, req.Notes)
	if err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", trip)
}

// CancelTrip handles the dispatcher-initiated hard cancel
func (h *TripsHandler) CancelTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.TripCancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.tripUC.CancelTrip(c.Request().Context(), tripID, req.Reason); err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", nil)
}
