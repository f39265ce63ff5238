package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// TripRepo defines the persistence operations for trips, stops and shifts
type TripRepo interface {
	// CreateTripWithSchedule inserts the trip, its full stop schedule and the
	// driver's shift in a single transaction. Returns ErrDriverBusy or
	// ErrVehicleBusy when a non-terminal trip already exists for either.
	CreateTripWithSchedule(ctx context.Context, trip *models.Trip, stops []*models.TripStop, shift *models.Shift) error

	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)

	// SaveTripAndShift updates the trip row and its shift row in one transaction
	SaveTripAndShift(ctx context.Context, trip *models.Trip, shift *models.Shift) error

	// FinalizeTrip updates the trip, marks every stop still PENDING as
	// SKIPPED and closes the shift in one transaction
	FinalizeTrip(ctx context.Context, trip *models.Trip, shift *models.Shift) error

	GetTripStops(ctx context.Context, tripID uuid.UUID) ([]*models.TripStop, error)
	GetTripStop(ctx context.Context, tripID, routePointID uuid.UUID) (*models.TripStop, error)
	GetTripStopByOrder(ctx context.Context, tripID uuid.UUID, order int) (*models.TripStop, error)
	CountTripStops(ctx context.Context, tripID uuid.UUID) (int, error)

	// SaveStopProgress updates the stop row and, when trip is non-nil, the
	// trip row in one transaction
	SaveStopProgress(ctx context.Context, stop *models.TripStop, trip *models.Trip) error

	GetShiftByTrip(ctx context.Context, tripID uuid.UUID) (*models.Shift, error)

	// CreateLocationSample appends a sample; samples are never updated
	CreateLocationSample(ctx context.Context, sample *models.LocationSample) error

	GetRouteWithPoints(ctx context.Context, routeID uuid.UUID) (*models.Route, error)
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)

	GetFleetStats(ctx context.Context, filter models.StatsFilter) (*models.FleetStats, error)
}

// LocationRepo defines the live location cache backed by Redis
type LocationRepo interface {
	SetLatestLocation(ctx context.Context, tripID uuid.UUID, loc models.Location) error
	GetLatestLocation(ctx context.Context, tripID uuid.UUID) (*models.Location, error)
	TrackVehicle(ctx context.Context, vehicleID uuid.UUID, latitude, longitude float64) error
	UntrackVehicle(ctx context.Context, vehicleID uuid.UUID) error
}
