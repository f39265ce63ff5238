package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/logger"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// ArriveAtStop records a stop arrival. Calling it again for a stop that has
// already been reached is a no-op, which also makes a manual arrival safe
// against a concurrent proximity-triggered one.
func (uc *tripUC) ArriveAtStop(ctx context.Context, tripID, routePointID uuid.UUID) (*models.TripStop, error) {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Status.Active() {
		return nil, trips.ErrTripNotActive
	}

	stop, err := uc.repo.GetTripStop(ctx, tripID, routePointID)
	if err != nil {
		return nil, err
	}
	if stop.Status != models.TripStopStatusPending {
		return stop, nil
	}

	if err := uc.applyArrival(ctx, trip, stop, uc.now()); err != nil {
		return nil, err
	}
	return stop, nil
}

// applyArrival transitions a PENDING stop to ARRIVED, computes its delay and
// flips the trip to IN_PROGRESS on the first arrival after start. Callers
// must hold the trip lock and have verified the stop is still PENDING.
func (uc *tripUC) applyArrival(ctx context.Context, trip *models.Trip, stop *models.TripStop, at time.Time) error {
	stop.Status = models.TripStopStatusArrived
	stop.ArrivedAt = &at
	stop.DelayMinutes = int(math.Round(at.Sub(stop.ScheduledAt).Minutes()))

	var tripUpdate *models.Trip
	if trip.Status == models.TripStatusStarted {
		trip.Status = models.TripStatusInProgress
		trip.UpdatedAt = at
		tripUpdate = trip
	}

	if err := uc.repo.SaveStopProgress(ctx, stop, tripUpdate); err != nil {
		return err
	}

	if err := uc.gw.PublishStopArrived(ctx, trip, stop); err != nil {
		logger.Warn("Failed to publish stop arrived event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	logger.Info("Stop arrival recorded",
		logger.String("trip_id", trip.ID.String()),
		logger.Int("stop_order", stop.StopOrder),
		logger.Int("delay_minutes", stop.DelayMinutes))

	return nil
}

// DepartFromStop records a departure with passenger counts, updates the
// trip's passenger total and advances the current stop index. The passenger
// count is floored at zero; it is not capped at capacity, overflow is a
// data-quality signal surfaced through the read models instead.
func (uc *tripUC) DepartFromStop(ctx context.Context, tripID, routePointID uuid.UUID, boarded, alighted int) (*models.TripStop, error) {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.Status.Active() {
		return nil, trips.ErrTripNotActive
	}

	stop, err := uc.repo.GetTripStop(ctx, tripID, routePointID)
	if err != nil {
		return nil, err
	}
	if stop.Status != models.TripStopStatusArrived {
		return nil, trips.ErrStopNotArrived
	}

	stopCount, err := uc.repo.CountTripStops(ctx, tripID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	stop.Status = models.TripStopStatusDeparted
	stop.DepartedAt = &now
	stop.Boarded = boarded
	stop.Alighted = alighted

	passengers := trip.PassengerCount + boarded - alighted
	if passengers < 0 {
		passengers = 0
	}
	trip.PassengerCount = passengers

	nextIndex := stop.StopOrder + 1
	if nextIndex > stopCount-1 {
		nextIndex = stopCount - 1
	}
	trip.CurrentStopIndex = nextIndex
	trip.UpdatedAt = now

	if err := uc.repo.SaveStopProgress(ctx, stop, trip); err != nil {
		return nil, err
	}

	if trip.PassengerCount > trip.MaxCapacity {
		logger.Warn("Passenger count exceeds vehicle capacity",
			logger.String("trip_id", tripID.String()),
			logger.Int("passenger_count", trip.PassengerCount),
			logger.Int("max_capacity", trip.MaxCapacity))
	}

	if err := uc.gw.PublishStopDeparted(ctx, trip, stop); err != nil {
		logger.Warn("Failed to publish stop departed event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	return stop, nil
}
