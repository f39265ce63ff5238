package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// TripUC defines the trip lifecycle use case operations
type TripUC interface {
	// StartTrip creates a trip with its full stop schedule and opens the
	// driver's shift as one atomic unit
	StartTrip(ctx context.Context, req models.TripStartRequest) (*models.Trip, error)

	// IngestLocation persists a GPS sample for an active trip and runs the
	// proximity check against the current stop
	IngestLocation(ctx context.Context, tripID uuid.UUID, req models.LocationUpdateRequest) error

	// ArriveAtStop records a stop arrival; idempotent when the stop has
	// already been reached
	ArriveAtStop(ctx context.Context, tripID, routePointID uuid.UUID) (*models.TripStop, error)

	// DepartFromStop records a stop departure with passenger counts and
	// advances the trip's current stop index
	DepartFromStop(ctx context.Context, tripID, routePointID uuid.UUID, boarded, alighted int) (*models.TripStop, error)

	// EmergencyStop pauses the trip and flags the driver's shift
	EmergencyStop(ctx context.Context, tripID uuid.UUID, reason string) error

	// ResumeTrip returns a paused trip to IN_PROGRESS
	ResumeTrip(ctx context.Context, tripID uuid.UUID) error

	// CompleteTrip finalizes the trip, skips remaining stops and closes the shift
	CompleteTrip(ctx context.Context, tripID uuid.UUID, notes string) (*models.Trip, error)

	// CancelTrip hard-cancels a non-terminal trip, freeing the driver and
	// vehicle immediately
	CancelTrip(ctx context.Context, tripID uuid.UUID, reason string) error

	// GetTripDetail returns the trip read model with its stop list and
	// latest known location
	GetTripDetail(ctx context.Context, tripID uuid.UUID) (*models.TripDetail, error)

	// GetFleetStats computes delay and on-time metrics over a window
	GetFleetStats(ctx context.Context, filter models.StatsFilter) (*models.FleetStats, error)
}
