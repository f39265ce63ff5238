package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
	"github.com/fleetops/shuttletrack/services/trips/mocks"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Trips.StopSpacingMinutes = 10
	cfg.Trips.ArrivalRadiusM = 100.0
	cfg.Trips.DefaultCapacity = 50
	cfg.Trips.OnTimeThresholdMin = 5
	return cfg
}

func newTestUC(repo trips.TripRepo, locRepo trips.LocationRepo, gw trips.TripGW, now time.Time) *tripUC {
	return &tripUC{
		cfg:     testConfig(),
		repo:    repo,
		locRepo: locRepo,
		gw:      gw,
		locks:   newTripLocks(),
		now:     func() time.Time { return now },
	}
}

func TestStartTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	locRepo := mocks.NewMockLocationRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)

	now := time.Date(2026, 3, 2, 7, 55, 0, 0, time.UTC)
	uc := newTestUC(repo, locRepo, gw, now)

	routeID := uuid.New()
	vehicleID := uuid.New()
	driverID := uuid.New()
	startAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	route := &models.Route{
		ID:       routeID,
		TenantID: uuid.New(),
		Name:     "Campus Loop",
		Points: []models.RoutePoint{
			{ID: uuid.New(), Name: "Depot", StopOrder: 0},
			{ID: uuid.New(), Name: "Central Station", StopOrder: 1},
			{ID: uuid.New(), Name: "Tech Park", StopOrder: 2},
		},
	}
	vehicle := &models.Vehicle{ID: vehicleID, Capacity: 32, IsActive: true}

	repo.EXPECT().GetRouteWithPoints(gomock.Any(), routeID).Return(route, nil)
	repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(vehicle, nil)
	repo.EXPECT().CreateTripWithSchedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip, stops []*models.TripStop, shift *models.Shift) error {
			assert.Equal(t, models.TripStatusStarted, trip.Status)
			assert.Equal(t, 32, trip.MaxCapacity)
			assert.Equal(t, 0, trip.PassengerCount)
			assert.Equal(t, 0, trip.CurrentStopIndex)
			assert.Len(t, stops, 3)
			assert.Equal(t, models.ShiftStatusActive, shift.Status)
			assert.Equal(t, trip.ID, shift.TripID)
			return nil
		})
	gw.EXPECT().PublishTripStarted(gomock.Any(), gomock.Any()).Return(nil)

	trip, err := uc.StartTrip(context.Background(), models.TripStartRequest{
		RouteID:          routeID,
		VehicleID:        vehicleID,
		DriverID:         driverID,
		ScheduledStartAt: startAt,
	})
	require.NoError(t, err)
	assert.Equal(t, driverID, trip.DriverID)
	require.NotNil(t, trip.ActualStartAt)
	assert.Equal(t, now, *trip.ActualStartAt)
}

func TestStartTripCapacityOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(repo, nil, gw, time.Now().UTC())

	routeID := uuid.New()
	vehicleID := uuid.New()
	route := &models.Route{
		ID:     routeID,
		Points: []models.RoutePoint{{ID: uuid.New(), Name: "Depot", StopOrder: 0}},
	}

	repo.EXPECT().GetRouteWithPoints(gomock.Any(), routeID).Return(route, nil)
	repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID, Capacity: 32}, nil)
	repo.EXPECT().CreateTripWithSchedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTripStarted(gomock.Any(), gomock.Any()).Return(nil)

	override := 20
	trip, err := uc.StartTrip(context.Background(), models.TripStartRequest{
		RouteID:          routeID,
		VehicleID:        vehicleID,
		DriverID:         uuid.New(),
		ScheduledStartAt: time.Now().UTC(),
		CapacityOverride: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, trip.MaxCapacity)
}

func TestStartTripDriverBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	uc := newTestUC(repo, nil, nil, time.Now().UTC())

	routeID := uuid.New()
	vehicleID := uuid.New()
	route := &models.Route{
		ID:     routeID,
		Points: []models.RoutePoint{{ID: uuid.New(), Name: "Depot", StopOrder: 0}},
	}

	repo.EXPECT().GetRouteWithPoints(gomock.Any(), routeID).Return(route, nil)
	repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID}, nil)
	repo.EXPECT().CreateTripWithSchedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(trips.ErrDriverBusy)

	_, err := uc.StartTrip(context.Background(), models.TripStartRequest{
		RouteID:          routeID,
		VehicleID:        vehicleID,
		DriverID:         uuid.New(),
		ScheduledStartAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, trips.ErrDriverBusy)
}

func TestStartTripEmptyRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	uc := newTestUC(repo, nil, nil, time.Now().UTC())

	routeID := uuid.New()
	vehicleID := uuid.New()
	repo.EXPECT().GetRouteWithPoints(gomock.Any(), routeID).Return(&models.Route{ID: routeID}, nil)
	repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID}, nil)

	_, err := uc.StartTrip(context.Background(), models.TripStartRequest{
		RouteID:          routeID,
		VehicleID:        vehicleID,
		DriverID:         uuid.New(),
		ScheduledStartAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, trips.ErrEmptyRoute)
}

func TestEmergencyStopAndResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)

	now := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	uc := newTestUC(repo, nil, gw, now)

	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, Status: models.TripStatusInProgress}
	shift := &models.Shift{ID: uuid.New(), TripID: tripID, Status: models.ShiftStatusActive}

	repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	repo.EXPECT().GetShiftByTrip(gomock.Any(), tripID).Return(shift, nil)
	repo.EXPECT().SaveTripAndShift(gomock.Any(), trip, shift).Return(nil)
	gw.EXPECT().PublishTripPaused(gomock.Any(), trip).Return(nil)

	err := uc.EmergencyStop(context.Background(), tripID, "mechanical issue")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPaused, trip.Status)
	assert.Equal(t, "mechanical issue", trip.Notes)
	assert.Equal(t, models.ShiftStatusEmergency, shift.Status)
	assert.Equal(t, "mechanical issue", shift.Notes)

	repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	repo.EXPECT().GetShiftByTrip(gomock.Any(), tripID).Return(shift, nil)
	repo.EXPECT().SaveTripAndShift(gomock.Any(), trip, shift).Return(nil)
	gw.EXPECT().PublishTripResumed(gomock.Any(), trip).Return(nil)

	err = uc.ResumeTrip(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, trip.Status)
	assert.Empty(t, trip.Notes)
	assert.Equal(t, models.ShiftStatusActive, shift.Status)
}

func TestResumeTripNotPaused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	uc := newTestUC(repo, nil, nil, time.Now().UTC())

	tripID := uuid.New()
	repo.EXPECT().GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusInProgress}, nil)

	err := uc.ResumeTrip(context.Background(), tripID)
	assert.ErrorIs(t, err, trips.ErrTripNotPaused)
}

func TestCompleteTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	locRepo := mocks.NewMockLocationRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	uc := newTestUC(repo, locRepo, gw, now)

	tripID := uuid.New()
	vehicleID := uuid.New()
	trip := &models.Trip{ID: tripID, VehicleID: vehicleID, Status: models.TripStatusInProgress}
	shift := &models.Shift{ID: uuid.New(), TripID: tripID, Status: models.ShiftStatusActive}

	repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	repo.EXPECT().GetShiftByTrip(gomock.Any(), tripID).Return(shift, nil)
	repo.EXPECT().FinalizeTrip(gomock.Any(), trip, shift).Return(nil)
	locRepo.EXPECT().UntrackVehicle(gomock.Any(), vehicleID).Return(nil)
	gw.EXPECT().PublishTripCompleted(gomock.Any(), trip).Return(nil)

	completed, err := uc.CompleteTrip(context.Background(), tripID, "uneventful run")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, completed.Status)
	require.NotNil(t, completed.ActualEndAt)
	assert.Equal(t, now, *completed.ActualEndAt)
	assert.Equal(t, "uneventful run", completed.Notes)
	assert.Equal(t, models.ShiftStatusCompleted, shift.Status)
	require.NotNil(t, shift.CheckOutAt)
	assert.Equal(t, now, *shift.CheckOutAt)
}

func TestCompleteTripAlreadyTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	uc := newTestUC(repo, nil, nil, time.Now().UTC())

	tripID := uuid.New()
	repo.EXPECT().GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCompleted}, nil)

	_, err := uc.CompleteTrip(context.Background(), tripID, "")
	assert.ErrorIs(t, err, trips.ErrTripNotActive)
}

func TestCancelTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	locRepo := mocks.NewMockLocationRepo(ctrl)
	gw := mocks.NewMockTripGW(ctrl)

	now := time.Date(2026, 3, 2, 8, 20, 0, 0, time.UTC)
	uc := newTestUC(repo, locRepo, gw, now)

	tripID := uuid.New()
	vehicleID := uuid.New()
	trip := &models.Trip{ID: tripID, VehicleID: vehicleID, Status: models.TripStatusPaused}
	shift := &models.Shift{ID: uuid.New(), TripID: tripID, Status: models.ShiftStatusEmergency}

	repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	repo.EXPECT().GetShiftByTrip(gomock.Any(), tripID).Return(shift, nil)
	repo.EXPECT().FinalizeTrip(gomock.Any(), trip, shift).Return(nil)
	locRepo.EXPECT().UntrackVehicle(gomock.Any(), vehicleID).Return(nil)
	gw.EXPECT().PublishTripCancelled(gomock.Any(), trip).Return(nil)

	err := uc.CancelTrip(context.Background(), tripID, "vehicle breakdown")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
	assert.Equal(t, "vehicle breakdown", trip.Notes)
	assert.Equal(t, models.ShiftStatusCompleted, shift.Status)
}

func TestGetTripDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	locRepo := mocks.NewMockLocationRepo(ctrl)
	uc := newTestUC(repo, locRepo, nil, time.Now().UTC())

	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, Status: models.TripStatusInProgress}
	stops := []*models.TripStop{{ID: uuid.New(), TripID: tripID}}
	latest := &models.Location{Latitude: -6.2, Longitude: 106.8}

	repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)
	repo.EXPECT().GetTripStops(gomock.Any(), tripID).Return(stops, nil)
	locRepo.EXPECT().GetLatestLocation(gomock.Any(), tripID).Return(latest, nil)

	detail, err := uc.GetTripDetail(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, trip, detail.Trip)
	assert.Equal(t, stops, detail.Stops)
	assert.Equal(t, latest, detail.LatestLocation)
}
