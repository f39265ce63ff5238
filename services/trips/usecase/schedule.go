package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
	"github.com/fleetops/shuttletrack/services/trips"
)

// BuildStopSchedule materializes one schedule entry per route point, spaced
// by the given interval from the planned start. The first entry is marked
// ARRIVED immediately since the vehicle begins at its origin; all others are
// PENDING. Returns ErrEmptyRoute when the route has no points.
func BuildStopSchedule(tripID uuid.UUID, points []models.RoutePoint, startAt time.Time, spacing time.Duration) ([]*models.TripStop, error) {
	if len(points) == 0 {
		return nil, trips.ErrEmptyRoute
	}

	ordered := make([]models.RoutePoint, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StopOrder < ordered[j].StopOrder
	})

	stops := make([]*models.TripStop, 0, len(ordered))
	for i, point := range ordered {
		stop := &models.TripStop{
			ID:           uuid.New(),
			TripID:       tripID,
			RoutePointID: point.ID,
			StopOrder:    i,
			ScheduledAt:  startAt.Add(time.Duration(i) * spacing),
			Status:       models.TripStopStatusPending,
			Latitude:     point.Latitude,
			Longitude:    point.Longitude,
			StopName:     point.Name,
		}
		if i == 0 {
			arrivedAt := startAt
			stop.Status = models.TripStopStatusArrived
			stop.ArrivedAt = &arrivedAt
		}
		stops = append(stops, stop)
	}

	return stops, nil
}
