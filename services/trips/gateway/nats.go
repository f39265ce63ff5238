package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fleetops/shuttletrack/internal/pkg/constants"
	"github.com/fleetops/shuttletrack/internal/pkg/models"
	natspkg "github.com/fleetops/shuttletrack/internal/pkg/nats"
	nsqpkg "github.com/fleetops/shuttletrack/internal/pkg/nsq"
)

// TripGW publishes trip lifecycle and stop events to NATS and raw location
// samples to the NSQ telemetry firehose
type TripGW struct {
	natsClient  *natspkg.Client
	nsqProducer *nsqpkg.Producer
}

// NewTripGW creates a new trips gateway
func NewTripGW(natsClient *natspkg.Client, nsqProducer *nsqpkg.Producer) *TripGW {
	return &TripGW{
		natsClient:  natsClient,
		nsqProducer: nsqProducer,
	}
}

func (g *TripGW) publishTripEvent(subject string, trip *models.Trip) error {
	event := models.TripEvent{
		TripID:     trip.ID,
		RouteID:    trip.RouteID,
		VehicleID:  trip.VehicleID,
		DriverID:   trip.DriverID,
		Status:     trip.Status,
		Notes:      trip.Notes,
		OccurredAt: models.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal trip event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}

func (g *TripGW) publishStopEvent(subject string, trip *models.Trip, stop *models.TripStop) error {
	event := models.StopEvent{
		TripID:         trip.ID,
		RoutePointID:   stop.RoutePointID,
		StopOrder:      stop.StopOrder,
		Status:         stop.Status,
		DelayMinutes:   stop.DelayMinutes,
		PassengerCount: trip.PassengerCount,
		OccurredAt:     models.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal stop event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}

// PublishTripStarted publishes a trip started event
func (g *TripGW) PublishTripStarted(ctx context.Context, trip *models.Trip) error {
	return g.publishTripEvent(constants.SubjectTripStarted, trip)
}

// PublishTripPaused publishes a trip paused event
func (g *TripGW) PublishTripPaused(ctx context.Context, trip *models.Trip) error {
	return g.publishTripEvent(constants.SubjectTripPaused, trip)
}

// PublishTripResumed publishes a trip resumed event
func (g *TripGW) PublishTripResumed(ctx context.Context, trip *models.Trip) error {
	return g.publishTripEvent(constants.SubjectTripResumed, trip)
}

// PublishTripCompleted publishes a trip completed event
func (g *TripGW) PublishTripCompleted(ctx context.Context, trip *models.Trip) error {
	return g.publishTripEvent(constants.SubjectTripCompleted, trip)
}

// PublishTripCancelled publishes a trip cancelled event
func (g *TripGW) PublishTripCancelled(ctx context.Context, trip *models.Trip) error {
	return g.publishTripEvent(constants.SubjectTripCancelled, trip)
}

// PublishStopArrived publishes a stop arrival event
func (g *TripGW) PublishStopArrived(ctx context.Context, trip *models.Trip, stop *models.TripStop) error {
	return g.publishStopEvent(constants.SubjectStopArrived, trip, stop)
}

// PublishStopDeparted publishes a stop departure event
func (g *TripGW) PublishStopDeparted(ctx context.Context, trip *models.Trip, stop *models.TripStop) error {
	return g.publishStopEvent(constants.SubjectStopDeparted, trip, stop)
}

// PublishLocationSample forwards the raw sample to the NSQ telemetry
// firehose consumed by the analytics pipeline
func (g *TripGW) PublishLocationSample(ctx context.Context, sample *models.LocationSample) error {
	return g.nsqProducer.Publish(constants.TopicLocationSamples, sample)
}
