package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
	"github.com/fleetops/shuttletrack/services/trips/mocks"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTripUC(ctrl)
	h := NewTripsHandler(uc)

	routeID := uuid.New()
	vehicleID := uuid.New()
	driverID := uuid.New()
	startAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	uc.EXPECT().StartTrip(gomock.Any(), gomock.Any()).
		Return(&models.Trip{ID: uuid.New(), DriverID: driverID, Status: models.TripStatusStarted}, nil)

	body := fmt.Sprintf(
		`{"route_id":%q,"vehicle_id":%q,"driver_id":%q,"scheduled_start_at":%q}`,
		routeID, vehicleID, driverID, startAt.Format(time.RFC3339),
	)
	c, rec := newTestContext(http.MethodPost, "/driver/trips", body)

	require.NoError(t, h.StartTrip(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    models.Trip `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.TripStatusStarted, resp.Data.Status)
}

func TestStartTripHandlerMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripsHandler(mocks.NewMockTripUC(ctrl))

	c, rec := newTestContext(http.MethodPost, "/driver/trips", `{}`)
	require.NoError(t, h.StartTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartTripHandlerDriverBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTripUC(ctrl)
	h := NewTripsHandler(uc)

	uc.EXPECT().StartTrip(gomock.Any(), gomock.Any()).Return(nil, trips.ErrDriverBusy)

	body := fmt.Sprintf(
		`{"route_id":%q,"vehicle_id":%q,"driver_id":%q,"scheduled_start_at":"2026-03-02T08:00:00Z"}`,
		uuid.New(), uuid.New(), uuid.New(),
	)
	c, rec := newTestContext(http.MethodPost, "/driver/trips", body)

	require.NoError(t, h.StartTrip(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetTripHandlerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTripUC(ctrl)
	h := NewTripsHandler(uc)

	tripID := uuid.New()
	uc.EXPECT().GetTripDetail(gomock.Any(), tripID).Return(nil, trips.ErrTripNotFound)

	c, rec := newTestContext(http.MethodGet, "/driver/trips/"+tripID.String(), "")
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTripHandlerInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripsHandler(mocks.NewMockTripUC(ctrl))

	c, rec := newTestContext(http.MethodGet, "/driver/trips/not-a-uuid", "")
	c.SetParamNames("tripID")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTripUC(ctrl)
	h := NewTripsHandler(uc)

	tripID := uuid.New()
	uc.EXPECT().IngestLocation(gomock.Any(), tripID, gomock.Any()).Return(nil)

	c, rec := newTestContext(http.MethodPost, "/driver/trips/"+tripID.String()+"/locations",
		`{"latitude":-6.2050,"longitude":106.8200}`)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.IngestLocation(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestIngestLocationHandlerInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripsHandler(mocks.NewMockTripUC(ctrl))

	tripID := uuid.New()
	c, rec := newTestContext(http.MethodPost, "/driver/trips/"+tripID.String()+"/locations",
		`{"latitude":-95.0,"longitude":106.8200}`)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.IngestLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestLocationHandlerTripNotActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTripUC(ctrl)
	h := NewTripsHandler(uc)

	tripID := uuid.New()
	uc.EXPECT().IngestLocation(gomock.Any(), tripID, gomock.Any()).Return(trips.ErrTripNotActive)

	c, rec := newTestContext(http.MethodPost, "/driver/trips/"+tripID.String()+"/locations",
		`{"latitude":-6.2050,"longitude":106.8200}`)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.IngestLocation(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDepartFromStopHandlerNegativeCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripsHandler(mocks.NewMockTripUC(ctrl))

	tripID := uuid.New()
	body := fmt.Sprintf(`{"route_point_id":%q,"boarded":-1,"alighted":0}`, uuid.New())
	c, rec := newTestContext(http.MethodPost, "/driver/trips/"+tripID.String()+"/depart", body)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	require.NoError(t, h.DepartFromStop(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockTripUC(ctrl)
	h := NewTripsHandler(uc)

	tenantID := uuid.New()
	uc.EXPECT().GetFleetStats(gomock.Any(), gomock.Any()).
		Return(&models.FleetStats{TotalTrips: 12, CompletedTrips: 10, AvgDelayMinutes: 3.5, OnTimeRate: 0.8}, nil)

	path := fmt.Sprintf(
		"/internal/analytics/summary?tenant_id=%s&from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z",
		tenantID,
	)
	c, rec := newTestContext(http.MethodGet, path, "")

	require.NoError(t, h.AnalyticsSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.FleetStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Data.TotalTrips)
	assert.InDelta(t, 0.8, resp.Data.OnTimeRate, 1e-9)
}

func TestAnalyticsSummaryHandlerMissingWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTripsHandler(mocks.NewMockTripUC(ctrl))

	c, rec := newTestContext(http.MethodGet, "/internal/analytics/summary?tenant_id="+uuid.New().String(), "")
	require.NoError(t, h.AnalyticsSummary(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
