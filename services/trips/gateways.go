package trips

import (
	"context"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// TripGW defines the event publishing operations for the trips service.
// Lifecycle and stop events go to NATS; raw location samples go to the
// NSQ telemetry firehose.
type TripGW interface {
	PublishTripStarted(ctx context.Context, trip *models.Trip) error
	PublishTripPaused(ctx context.Context, trip *models.Trip) error
	PublishTripResumed(ctx context.Context, trip *models.Trip) error
	PublishTripCompleted(ctx context.Context, trip *models.Trip) error
	PublishTripCancelled(ctx context.Context, trip *models.Trip) error
	PublishStopArrived(ctx context.Context, trip *models.Trip, stop *models.TripStop) error
	PublishStopDeparted(ctx context.Context, trip *models.Trip, stop *models.TripStop) error
	PublishLocationSample(ctx context.Context, sample *models.LocationSample) error
}
