package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/shuttletrack/internal/utils"
	"github.com/fleetops/shuttletrack/services/trips"
)

// writeDomainError maps the service's validation failures to specific HTTP
// statuses so the driver app and dispatch UI can show the exact reason
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, trips.ErrTripNotFound),
		errors.Is(err, trips.ErrStopNotFound),
		errors.Is(err, trips.ErrRouteNotFound),
		errors.Is(err, trips.ErrVehicleNotFound),
		errors.Is(err, trips.ErrShiftNotFound):
		return utils.NotFoundResponse(c, err.Error())

	case errors.Is(err, trips.ErrDriverBusy),
		errors.Is(err, trips.ErrVehicleBusy),
		errors.Is(err, trips.ErrTripNotActive),
		errors.Is(err, trips.ErrTripNotPaused),
		errors.Is(err, trips.ErrStopNotArrived):
		return utils.ConflictResponse(c, err.Error())

	case errors.Is(err, trips.ErrEmptyRoute):
		return utils.BadRequestResponse(c, err.Error())

	default:
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
