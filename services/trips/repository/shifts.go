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

// GetShiftByTrip returns the shift opened for a trip
func (r *TripRepo) GetShiftByTrip(ctx context.Context, tripID uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.GetContext(ctx, &shift, `SELECT * FROM shifts WHERE trip_id = $1`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &shift, nil
}
