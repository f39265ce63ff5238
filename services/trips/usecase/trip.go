package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/logger"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg     *models.Config
	repo    trips.TripRepo
	locRepo trips.LocationRepo
	gw      trips.TripGW
	locks   *tripLocks
	now     func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	repo trips.TripRepo,
	locRepo trips.LocationRepo,
	gw trips.TripGW,
) (trips.TripUC, error) {
	return &tripUC{
		cfg:     cfg,
		repo:    repo,
		locRepo: locRepo,
		gw:      gw,
		locks:   newTripLocks(),
		now:     models.Now,
	}, nil
}

// StartTrip creates a trip with its stop schedule and opens the driver's
// shift as one atomic unit. The repository enforces the driver/vehicle
// exclusivity invariant inside the same transaction.
func (uc *tripUC) StartTrip(ctx context.Context, req models.TripStartRequest) (*models.Trip, error) {
	route, err := uc.repo.GetRouteWithPoints(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	capacity := uc.cfg.Trips.DefaultCapacity
	if vehicle.Capacity > 0 {
		capacity = vehicle.Capacity
	}
	if req.CapacityOverride != nil && *req.CapacityOverride > 0 {
		capacity = *req.CapacityOverride
	}

	now := uc.now()
	trip := &models.Trip{
		ID:               uuid.New(),
		RouteID:          req.RouteID,
		VehicleID:        req.VehicleID,
		DriverID:         req.DriverID,
		ScheduledStartAt: req.ScheduledStartAt,
		ScheduledEndAt:   req.ScheduledEndAt,
		ActualStartAt:    &now,
		Status:           models.TripStatusStarted,
		MaxCapacity:      capacity,
		PassengerCount:   0,
		CurrentStopIndex: 0,
		Notes:            req.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	spacing := time.Duration(uc.cfg.Trips.StopSpacingMinutes) * time.Minute
	stops, err := BuildStopSchedule(trip.ID, route.Points, req.ScheduledStartAt, spacing)
	if err != nil {
		return nil, err
	}

	shift := &models.Shift{
		ID:        uuid.New(),
		TripID:    trip.ID,
		DriverID:  req.DriverID,
		VehicleID: req.VehicleID,
		CheckInAt: now,
		Status:    models.ShiftStatusActive,
	}

	if err := uc.repo.CreateTripWithSchedule(ctx, trip, stops, shift); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishTripStarted(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip started event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	logger.Info("Trip started",
		logger.String("trip_id", trip.ID.String()),
		logger.String("driver_id", req.DriverID.String()),
		logger.String("vehicle_id", req.VehicleID.String()),
		logger.Int("stops", len(stops)))

	return trip, nil
}

// EmergencyStop pauses the trip and flags the driver's shift. Re-pausing an
// already paused trip only refreshes the recorded reason.
func (uc *tripUC) EmergencyStop(ctx context.Context, tripID uuid.UUID, reason string) error {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status.Terminal() {
		return trips.ErrTripNotActive
	}

	shift, err := uc.repo.GetShiftByTrip(ctx, tripID)
	if err != nil {
		return err
	}

	now := uc.now()
	trip.Status = models.TripStatusPaused
	trip.Notes = reason
	trip.UpdatedAt = now
	markEmergency(shift, reason)

	if err := uc.repo.SaveTripAndShift(ctx, trip, shift); err != nil {
		return err
	}

	if err := uc.gw.PublishTripPaused(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip paused event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	logger.Info("Trip paused by emergency stop",
		logger.String("trip_id", tripID.String()),
		logger.String("reason", reason))

	return nil
}

// ResumeTrip returns a paused trip to IN_PROGRESS and clears the emergency
// flag on the shift
func (uc *tripUC) ResumeTrip(ctx context.Context, tripID uuid.UUID) error {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusPaused {
		return trips.ErrTripNotPaused
	}

	shift, err := uc.repo.GetShiftByTrip(ctx, tripID)
	if err != nil {
		return err
	}

	trip.Status = models.TripStatusInProgress
	trip.Notes = ""
	trip.UpdatedAt = uc.now()
	clearEmergency(shift)

	if err := uc.repo.SaveTripAndShift(ctx, trip, shift); err != nil {
		return err
	}

	if err := uc.gw.PublishTripResumed(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip resumed event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	return nil
}

// CompleteTrip finalizes the trip, marks every stop still PENDING as SKIPPED
// and closes the shift. The trip becomes immutable afterwards.
func (uc *tripUC) CompleteTrip(ctx context.Context, tripID uuid.UUID, notes string) (*models.Trip, error) {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.Status.Terminal() {
		return nil, trips.ErrTripNotActive
	}

	shift, err := uc.repo.GetShiftByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	trip.Status = models.TripStatusCompleted
	trip.ActualEndAt = &now
	trip.UpdatedAt = now
	if notes != "" {
		trip.Notes = notes
	}
	closeShift(shift, now)

	if err := uc.repo.FinalizeTrip(ctx, trip, shift); err != nil {
		return nil, err
	}

	if err := uc.locRepo.UntrackVehicle(ctx, trip.VehicleID); err != nil {
		logger.Warn("Failed to remove vehicle from live tracking",
			logger.String("vehicle_id", trip.VehicleID.String()),
			logger.Err(err))
	}

	if err := uc.gw.PublishTripCompleted(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip completed event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	logger.Info("Trip completed",
		logger.String("trip_id", tripID.String()),
		logger.Int("passenger_count", trip.PassengerCount))

	return trip, nil
}

// CancelTrip hard-cancels a non-terminal trip on behalf of a dispatcher,
// freeing the driver and vehicle immediately. Remaining stops are skipped
// and the shift is closed, same as completion.
func (uc *tripUC) CancelTrip(ctx context.Context, tripID uuid.UUID, reason string) error {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status.Terminal() {
		return trips.ErrTripNotActive
	}

	shift, err := uc.repo.GetShiftByTrip(ctx, tripID)
	if err != nil {
		return err
	}

	now := uc.now()
	trip.Status = models.TripStatusCancelled
	trip.ActualEndAt = &now
	trip.Notes = reason
	trip.UpdatedAt = now
	closeShift(shift, now)

	if err := uc.repo.FinalizeTrip(ctx, trip, shift); err != nil {
		return err
	}

	if err := uc.locRepo.UntrackVehicle(ctx, trip.VehicleID); err != nil {
		logger.Warn("Failed to remove vehicle from live tracking",
			logger.String("vehicle_id", trip.VehicleID.String()),
			logger.Err(err))
	}

	if err := uc.gw.PublishTripCancelled(ctx, trip); err != nil {
		logger.Warn("Failed to publish trip cancelled event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	logger.Info("Trip cancelled",
		logger.String("trip_id", tripID.String()),
		logger.String("reason", reason))

	return nil
}

// GetTripDetail returns the trip with its stop list and latest known location
func (uc *tripUC) GetTripDetail(ctx context.Context, tripID uuid.UUID) (*models.TripDetail, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	stops, err := uc.repo.GetTripStops(ctx, tripID)
	if err != nil {
		return nil, err
	}

	latest, err := uc.locRepo.GetLatestLocation(ctx, tripID)
	if err != nil {
		// The cache entry may have expired; the detail view is still valid.
		logger.Debug("No cached location for trip",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
		latest = nil
	}

	return &models.TripDetail{
		Trip:           trip,
		Stops:          stops,
		LatestLocation: latest,
	}, nil
}
