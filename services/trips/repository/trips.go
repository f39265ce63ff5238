package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// TripRepo is the Postgres-backed repository for trips, stops and shifts
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// activeStatuses is the status set that holds the driver/vehicle
// exclusivity lock
const activeStatuses = "'STARTED','IN_PROGRESS','PAUSED'"

// CreateTripWithSchedule inserts the trip, its stop schedule and the shift
// as one transaction. The busy checks run inside the same transaction, and
// partial unique indexes on active trips back them up under concurrent
// starts racing through separate connections.
func (r *TripRepo) CreateTripWithSchedule(ctx context.Context, trip *models.Trip, stops []*models.TripStop, shift *models.Shift) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var busy int
	query := fmt.Sprintf(`SELECT COUNT(1) FROM trips WHERE driver_id = $1 AND status IN (%s)`, activeStatuses)
	if err := tx.GetContext(ctx, &busy, query, trip.DriverID); err != nil {
		return fmt.Errorf("failed to check driver availability: %w", err)
	}
	if busy > 0 {
		return trips.ErrDriverBusy
	}

	query = fmt.Sprintf(`SELECT COUNT(1) FROM trips WHERE vehicle_id = $1 AND status IN (%s)`, activeStatuses)
	if err := tx.GetContext(ctx, &busy, query, trip.VehicleID); err != nil {
		return fmt.Errorf("failed to check vehicle availability: %w", err)
	}
	if busy > 0 {
		return trips.ErrVehicleBusy
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trips (
			id, route_id, vehicle_id, driver_id,
			scheduled_start_at, scheduled_end_at, actual_start_at, actual_end_at,
			status, max_capacity, passenger_count, current_stop_index, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		trip.ID, trip.RouteID, trip.VehicleID, trip.DriverID,
		trip.ScheduledStartAt, trip.ScheduledEndAt, trip.ActualStartAt, trip.ActualEndAt,
		trip.Status, trip.MaxCapacity, trip.PassengerCount, trip.CurrentStopIndex, trip.Notes,
		trip.CreatedAt, trip.UpdatedAt,
	)
	if err != nil {
		return mapExclusivityErr(err)
	}

	for _, stop := range stops {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO trip_stops (
				id, trip_id, route_point_id, stop_order, scheduled_at,
				arrived_at, departed_at, status, delay_minutes, boarded, alighted
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			stop.ID, stop.TripID, stop.RoutePointID, stop.StopOrder, stop.ScheduledAt,
			stop.ArrivedAt, stop.DepartedAt, stop.Status, stop.DelayMinutes, stop.Boarded, stop.Alighted,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip stop: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shifts (
			id, trip_id, driver_id, vehicle_id, check_in_at, check_out_at, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		shift.ID, shift.TripID, shift.DriverID, shift.VehicleID,
		shift.CheckInAt, shift.CheckOutAt, shift.Status, shift.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return mapExclusivityErr(err)
	}
	return nil
}

// GetTrip returns a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `SELECT * FROM trips WHERE id = $1`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// SaveTripAndShift updates the trip and its shift in one transaction
func (r *TripRepo) SaveTripAndShift(ctx context.Context, trip *models.Trip, shift *models.Shift) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateTripTx(ctx, tx, trip); err != nil {
		return err
	}
	if err := updateShiftTx(ctx, tx, shift); err != nil {
		return err
	}

	return tx.Commit()
}

// FinalizeTrip updates the trip, marks every stop still PENDING as SKIPPED
// and closes the shift, all in one transaction
func (r *TripRepo) FinalizeTrip(ctx context.Context, trip *models.Trip, shift *models.Shift) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateTripTx(ctx, tx, trip); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trip_stops SET status = $1 WHERE trip_id = $2 AND status = $3`,
		models.TripStopStatusSkipped, trip.ID, models.TripStopStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to skip pending stops: %w", err)
	}

	if err := updateShiftTx(ctx, tx, shift); err != nil {
		return err
	}

	return tx.Commit()
}

func updateTripTx(ctx context.Context, tx *sqlx.Tx, trip *models.Trip) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE trips SET
			actual_start_at = $1, actual_end_at = $2, status = $3,
			passenger_count = $4, current_stop_index = $5, notes = $6, updated_at = $7
		WHERE id = $8`,
		trip.ActualStartAt, trip.ActualEndAt, trip.Status,
		trip.PassengerCount, trip.CurrentStopIndex, trip.Notes, trip.UpdatedAt,
		trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return nil
}

func updateShiftTx(ctx context.Context, tx *sqlx.Tx, shift *models.Shift) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE shifts SET check_out_at = $1, status = $2, notes = $3 WHERE id = $4`,
		shift.CheckOutAt, shift.Status, shift.Notes, shift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// mapExclusivityErr translates unique violations on the active-trip partial
// indexes into the busy errors callers expect
func mapExclusivityErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "driver"):
			return trips.ErrDriverBusy
		case strings.Contains(pgErr.ConstraintName, "vehicle"):
			return trips.ErrVehicleBusy
		}
	}
	return fmt.Errorf("failed to create trip: %w", err)
}
