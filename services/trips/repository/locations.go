package repository

import (
	"context"
	"fmt"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// CreateLocationSample appends a GPS sample to the trip's history.
// Samples are append-only and never updated.
func (r *TripRepo) CreateLocationSample(ctx context.Context, sample *models.LocationSample) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO location_samples (
			id, trip_id, vehicle_id, latitude, longitude,
			speed_kph, heading, accuracy_m, geohash, recorded_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		sample.ID, sample.TripID, sample.VehicleID, sample.Latitude, sample.Longitude,
		sample.SpeedKph, sample.Heading, sample.AccuracyM, sample.Geohash,
		sample.RecordedAt, sample.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert location sample: %w", err)
	}
	return nil
}
