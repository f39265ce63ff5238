package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// memStore is a stateful fake backing the concurrency tests. The gomock
// mocks replay fixed expectations, which cannot express "the second caller
// observes the first caller's write"; this store can.
type memStore struct {
	mu      sync.Mutex
	trip    *models.Trip
	stops   map[uuid.UUID]*models.TripStop
	samples []*models.LocationSample

	arrivedEvents  int
	locationEvents int
}

func newMemStore(trip *models.Trip, stops []*models.TripStop) *memStore {
	byID := make(map[uuid.UUID]*models.TripStop, len(stops))
	for _, s := range stops {
		copied := *s
		byID[s.ID] = &copied
	}
	copied := *trip
	return &memStore{trip: &copied, stops: byID}
}

func (m *memStore) tripCopy() *models.Trip {
	c := *m.trip
	return &c
}

func (m *memStore) stopByOrder(order int) *models.TripStop {
	for _, s := range m.stops {
		if s.StopOrder == order {
			c := *s
			return &c
		}
	}
	return nil
}

var errNotUsed = errors.New("not used by this test")

func (m *memStore) GetTrip(_ context.Context, tripID uuid.UUID) (*models.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.trip.ID != tripID {
		return nil, trips.ErrTripNotFound
	}
	return m.tripCopy(), nil
}

func (m *memStore) GetTripStopByOrder(_ context.Context, tripID uuid.UUID, order int) (*models.TripStop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stop := m.stopByOrder(order)
	if stop == nil {
		return nil, trips.ErrStopNotFound
	}
	return stop, nil
}

func (m *memStore) SaveStopProgress(_ context.Context, stop *models.TripStop, trip *models.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *stop
	m.stops[stop.ID] = &copied
	if trip != nil {
		tripCopied := *trip
		m.trip = &tripCopied
	}
	return nil
}

func (m *memStore) CreateLocationSample(_ context.Context, sample *models.LocationSample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, sample)
	return nil
}

func (m *memStore) CreateTripWithSchedule(context.Context, *models.Trip, []*models.TripStop, *models.Shift) error {
	return errNotUsed
}

func (m *memStore) SaveTripAndShift(context.Context, *models.Trip, *models.Shift) error {
	return errNotUsed
}

func (m *memStore) FinalizeTrip(context.Context, *models.Trip, *models.Shift) error {
	return errNotUsed
}

func (m *memStore) GetTripStops(context.Context, uuid.UUID) ([]*models.TripStop, error) {
	return nil, errNotUsed
}

func (m *memStore) GetTripStop(context.Context, uuid.UUID, uuid.UUID) (*models.TripStop, error) {
	return nil, errNotUsed
}

func (m *memStore) CountTripStops(context.Context, uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stops), nil
}

func (m *memStore) GetShiftByTrip(context.Context, uuid.UUID) (*models.Shift, error) {
	return nil, errNotUsed
}

func (m *memStore) GetRouteWithPoints(context.Context, uuid.UUID) (*models.Route, error) {
	return nil, errNotUsed
}

func (m *memStore) GetVehicle(context.Context, uuid.UUID) (*models.Vehicle, error) {
	return nil, errNotUsed
}

func (m *memStore) GetFleetStats(context.Context, models.StatsFilter) (*models.FleetStats, error) {
	return nil, errNotUsed
}

// LocationRepo

func (m *memStore) SetLatestLocation(context.Context, uuid.UUID, models.Location) error { return nil }

func (m *memStore) GetLatestLocation(context.Context, uuid.UUID) (*models.Location, error) {
	return nil, nil
}

func (m *memStore) TrackVehicle(context.Context, uuid.UUID, float64, float64) error { return nil }

func (m *memStore) UntrackVehicle(context.Context, uuid.UUID) error { return nil }

// TripGW

func (m *memStore) PublishTripStarted(context.Context, *models.Trip) error   { return nil }
func (m *memStore) PublishTripPaused(context.Context, *models.Trip) error    { return nil }
func (m *memStore) PublishTripResumed(context.Context, *models.Trip) error   { return nil }
func (m *memStore) PublishTripCompleted(context.Context, *models.Trip) error { return nil }
func (m *memStore) PublishTripCancelled(context.Context, *models.Trip) error { return nil }

func (m *memStore) PublishStopArrived(context.Context, *models.Trip, *models.TripStop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.arrivedEvents++
	return nil
}

func (m *memStore) PublishStopDeparted(context.Context, *models.Trip, *models.TripStop) error {
	return nil
}

func (m *memStore) PublishLocationSample(context.Context, *models.LocationSample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locationEvents++
	return nil
}
