package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

func TestBuildStopSchedule(t *testing.T) {
	tripID := uuid.New()
	startAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	spacing := 10 * time.Minute

	// Deliberately out of order to verify sorting by stop order
	points := []models.RoutePoint{
		{ID: uuid.New(), Name: "Tech Park", StopOrder: 2, Latitude: -6.21, Longitude: 106.83},
		{ID: uuid.New(), Name: "Depot", StopOrder: 0, Latitude: -6.20, Longitude: 106.81},
		{ID: uuid.New(), Name: "Central Station", StopOrder: 1, Latitude: -6.205, Longitude: 106.82},
	}

	stops, err := BuildStopSchedule(tripID, points, startAt, spacing)
	require.NoError(t, err)
	require.Len(t, stops, 3)

	assert.Equal(t, "Depot", stops[0].StopName)
	assert.Equal(t, "Central Station", stops[1].StopName)
	assert.Equal(t, "Tech Park", stops[2].StopName)

	for i, stop := range stops {
		assert.Equal(t, tripID, stop.TripID)
		assert.Equal(t, i, stop.StopOrder)
		assert.Equal(t, startAt.Add(time.Duration(i)*spacing), stop.ScheduledAt)
	}

	// The vehicle begins at the origin, so the first stop is already reached
	assert.Equal(t, models.TripStopStatusArrived, stops[0].Status)
	require.NotNil(t, stops[0].ArrivedAt)
	assert.Equal(t, startAt, *stops[0].ArrivedAt)

	assert.Equal(t, models.TripStopStatusPending, stops[1].Status)
	assert.Nil(t, stops[1].ArrivedAt)
	assert.Equal(t, models.TripStopStatusPending, stops[2].Status)
}

func TestBuildStopScheduleEmptyRoute(t *testing.T) {
	_, err := BuildStopSchedule(uuid.New(), nil, time.Now(), 10*time.Minute)
	assert.ErrorIs(t, err, trips.ErrEmptyRoute)
}

func TestBuildStopScheduleSingleStop(t *testing.T) {
	startAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	points := []models.RoutePoint{
		{ID: uuid.New(), Name: "Depot", StopOrder: 0},
	}

	stops, err := BuildStopSchedule(uuid.New(), points, startAt, 10*time.Minute)
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, models.TripStopStatusArrived, stops[0].Status)
}
