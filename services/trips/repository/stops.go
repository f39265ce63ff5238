package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// stopSelect joins the route point coordinates in for proximity checks and
// the dashboard stop list
const stopSelect = `
	SELECT ts.id, ts.trip_id, ts.route_point_id, ts.stop_order, ts.scheduled_at,
	       ts.arrived_at, ts.departed_at, ts.status, ts.delay_minutes,
	       ts.boarded, ts.alighted,
	       rp.latitude, rp.longitude, rp.name AS stop_name
	FROM trip_stops ts
	JOIN route_points rp ON rp.id = ts.route_point_id`

// GetTripStops returns all stops of a trip in schedule order
func (r *TripRepo) GetTripStops(ctx context.Context, tripID uuid.UUID) ([]*models.TripStop, error) {
	var stops []*models.TripStop
	err := r.db.SelectContext(ctx, &stops,
		stopSelect+` WHERE ts.trip_id = $1 ORDER BY ts.stop_order`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip stops: %w", err)
	}
	return stops, nil
}

// GetTripStop returns the stop of a trip for a given route point
func (r *TripRepo) GetTripStop(ctx context.Context, tripID, routePointID uuid.UUID) (*models.TripStop, error) {
	var stop models.TripStop
	err := r.db.GetContext(ctx, &stop,
		stopSelect+` WHERE ts.trip_id = $1 AND ts.route_point_id = $2`, tripID, routePointID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrStopNotFound
		}
		return nil, fmt.Errorf("failed to get trip stop: %w", err)
	}
	return &stop, nil
}

// GetTripStopByOrder returns the stop of a trip at a given schedule position
func (r *TripRepo) GetTripStopByOrder(ctx context.Context, tripID uuid.UUID, order int) (*models.TripStop, error) {
	var stop models.TripStop
	err := r.db.GetContext(ctx, &stop,
		stopSelect+` WHERE ts.trip_id = $1 AND ts.stop_order = $2`, tripID, order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrStopNotFound
		}
		return nil, fmt.Errorf("failed to get trip stop by order: %w", err)
	}
	return &stop, nil
}

// CountTripStops returns the number of scheduled stops for a trip
func (r *TripRepo) CountTripStops(ctx context.Context, tripID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(1) FROM trip_stops WHERE trip_id = $1`, tripID)
	if err != nil {
		return 0, fmt.Errorf("failed to count trip stops: %w", err)
	}
	return count, nil
}

// SaveStopProgress updates the stop row and, when trip is non-nil, the trip
// row in one transaction so arrival and departure effects are atomic
func (r *TripRepo) SaveStopProgress(ctx context.Context, stop *models.TripStop, trip *models.Trip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE trip_stops SET
			arrived_at = $1, departed_at = $2, status = $3,
			delay_minutes = $4, boarded = $5, alighted = $6
		WHERE id = $7`,
		stop.ArrivedAt, stop.DepartedAt, stop.Status,
		stop.DelayMinutes, stop.Boarded, stop.Alighted,
		stop.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip stop: %w", err)
	}

	if trip != nil {
		if err := updateTripTx(ctx, tx, trip); err != nil {
			return err
		}
	}

	return tx.Commit()
}
