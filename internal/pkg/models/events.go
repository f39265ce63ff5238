package models

import (
	"time"

	"github.com/google/uuid"
)

// TripEvent is published on trip lifecycle transitions
type TripEvent struct {
	TripID     uuid.UUID  `json:"trip_id"`
	RouteID    uuid.UUID  `json:"route_id"`
	VehicleID  uuid.UUID  `json:"vehicle_id"`
	DriverID   uuid.UUID  `json:"driver_id"`
	Status     TripStatus `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// StopEvent is published when a trip stop is arrived at or departed from
type StopEvent struct {
	TripID         uuid.UUID      `json:"trip_id"`
	RoutePointID   uuid.UUID      `json:"route_point_id"`
	StopOrder      int            `json:"stop_order"`
	Status         TripStopStatus `json:"status"`
	DelayMinutes   int            `json:"delay_minutes"`
	PassengerCount int            `json:"passenger_count"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
