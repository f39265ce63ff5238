package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/constants"
	"github.com/fleetops/shuttletrack/internal/pkg/database"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// locationTTL is how long the latest-location hash survives without a
// fresh sample
const locationTTL = 24 * time.Hour

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates the Redis-backed live location cache
func NewLocationRepository(redisClient *database.RedisClient) trips.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

// SetLatestLocation stores the most recent location of a trip in a hash
func (r *locationRepo) SetLatestLocation(ctx context.Context, tripID uuid.UUID, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyTripLocation, tripID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(loc.Timestamp.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store latest location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}
	return nil
}

// GetLatestLocation returns the most recent location of a trip, or nil when
// none is cached
func (r *locationRepo) GetLatestLocation(ctx context.Context, tripID uuid.UUID) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyTripLocation, tripID)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest location: %w", err)
	}
	if len(values) != 3 || values[0] == nil || values[1] == nil || values[2] == nil {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fmt.Sprintf("%v", values[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fmt.Sprintf("%v", values[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}
	ts, err := strconv.ParseInt(fmt.Sprintf("%v", values[2]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached timestamp: %w", err)
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0).UTC(),
	}, nil
}

// TrackVehicle upserts the vehicle into the live GEO set
func (r *locationRepo) TrackVehicle(ctx context.Context, vehicleID uuid.UUID, latitude, longitude float64) error {
	return r.redisClient.GeoAdd(ctx, constants.KeyVehicleGeo, longitude, latitude, vehicleID.String())
}

// UntrackVehicle removes the vehicle from the live GEO set when its trip ends
func (r *locationRepo) UntrackVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	return r.redisClient.GeoRemove(ctx, constants.KeyVehicleGeo, vehicleID.String())
}
