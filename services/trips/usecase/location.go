package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/logger"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/internal/utils"
	"github.com/fleetops/shuttletrack/services/trips"
)

// IngestLocation persists a GPS sample for an active trip, refreshes the
// live location cache, publishes the sample to the telemetry firehose and
// runs the proximity check against the current stop only. Samples for
// paused or finished trips are rejected and not persisted.
func (uc *tripUC) IngestLocation(ctx context.Context, tripID uuid.UUID, req models.LocationUpdateRequest) error {
	unlock := uc.locks.Lock(tripID)
	defer unlock()

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if !trip.Status.Active() {
		return trips.ErrTripNotActive
	}

	now := uc.now()
	recordedAt := req.Timestamp
	if recordedAt.IsZero() {
		recordedAt = now
	}

	point := utils.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	sample := &models.LocationSample{
		ID:         uuid.New(),
		TripID:     tripID,
		VehicleID:  trip.VehicleID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		SpeedKph:   req.SpeedKph,
		Heading:    req.Heading,
		AccuracyM:  req.AccuracyM,
		Geohash:    utils.EncodeGeohash(point),
		RecordedAt: recordedAt,
		CreatedAt:  now,
	}

	if err := uc.repo.CreateLocationSample(ctx, sample); err != nil {
		return err
	}

	loc := models.Location{Latitude: req.Latitude, Longitude: req.Longitude, Timestamp: recordedAt}
	if err := uc.locRepo.SetLatestLocation(ctx, tripID, loc); err != nil {
		logger.Warn("Failed to cache latest location",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
	if err := uc.locRepo.TrackVehicle(ctx, trip.VehicleID, req.Latitude, req.Longitude); err != nil {
		logger.Warn("Failed to update vehicle geo set",
			logger.String("vehicle_id", trip.VehicleID.String()),
			logger.Err(err))
	}

	if err := uc.gw.PublishLocationSample(ctx, sample); err != nil {
		logger.Warn("Failed to publish location sample",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	return uc.checkProximity(ctx, trip, point)
}

// checkProximity tests the sample against the trip's current stop only.
// Later stops are never checked ahead of their turn, so GPS noise cannot
// skip the schedule forward.
func (uc *tripUC) checkProximity(ctx context.Context, trip *models.Trip, point utils.GeoPoint) error {
	stop, err := uc.repo.GetTripStopByOrder(ctx, trip.ID, trip.CurrentStopIndex)
	if err != nil {
		logger.Warn("Current stop not found for proximity check",
			logger.String("trip_id", trip.ID.String()),
			logger.Int("stop_index", trip.CurrentStopIndex),
			logger.Err(err))
		return nil
	}
	if stop.Status != models.TripStopStatusPending {
		return nil
	}

	stopPoint := utils.GeoPoint{Latitude: stop.Latitude, Longitude: stop.Longitude}
	if !utils.WithinRadius(point, stopPoint, uc.cfg.Trips.ArrivalRadiusM) {
		return nil
	}

	return uc.applyArrival(ctx, trip, stop, uc.now())
}
