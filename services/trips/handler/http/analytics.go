package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/internal/utils"
)

// AnalyticsSummary handles the fleet-wide delay and on-time statistics
// request for dashboards
func (h *TripsHandler) AnalyticsSummary(c echo.Context) error {
	tenantID, err := uuid.Parse(c.QueryParam("tenant_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "tenant_id is required")
	}

	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return utils.BadRequestResponse(c, "from must be an RFC3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return utils.BadRequestResponse(c, "to must be an RFC3339 timestamp")
	}

	stats, err := h.tripUC.GetFleetStats(c.Request().Context(), models.StatsFilter{
		TenantID: tenantID,
		From:     from,
		To:       to,
	})
	if err != nil {
		return writeDomainError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}
