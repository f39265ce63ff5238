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

// GetRouteWithPoints returns a route with its ordered stop list. Routes are
// owned by the route management service; this is a read-only view.
func (r *TripRepo) GetRouteWithPoints(ctx context.Context, routeID uuid.UUID) (*models.Route, error) {
	var route models.Route
	err := r.db.GetContext(ctx, &route,
		`SELECT id, tenant_id, name FROM routes WHERE id = $1`, routeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	err = r.db.SelectContext(ctx, &route.Points,
		`SELECT * FROM route_points WHERE route_id = $1 ORDER BY stop_order`, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get route points: %w", err)
	}

	return &route, nil
}

// GetVehicle returns a vehicle from the fleet registry. Read-only view.
func (r *TripRepo) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle, `SELECT * FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}
