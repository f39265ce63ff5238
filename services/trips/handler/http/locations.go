package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/internal/utils"
)

// IngestLocation handles a single GPS sample from the driver app. The app
// streams these on a fixed interval; a rejected sample is simply dropped and
// the device keeps trying on its own cadence.
func (h *TripsHandler) IngestLocation(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return utils.BadRequestResponse(c, "Invalid coordinates")
	}

	if err := h.tripUC.IngestLocation(c.Request().Context(), tripID, req); err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Location recorded", nil)
}
