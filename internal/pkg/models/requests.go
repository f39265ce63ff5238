package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStartRequest is the payload for starting a new trip
type TripStartRequest struct {
	RouteID          uuid.UUID `json:"route_id"`
	VehicleID        uuid.UUID `json:"vehicle_id"`
	DriverID         uuid.UUID `json:"driver_id"`
	ScheduledStartAt time.Time `json:"scheduled_start_at"`
	ScheduledEndAt   time.Time `json:"scheduled_end_at"`
	CapacityOverride *int      `json:"capacity_override,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

// LocationUpdateRequest is the payload for a single GPS sample from the driver app
type LocationUpdateRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	SpeedKph  *float64  `json:"speed_kph,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
	AccuracyM *float64  `json:"accuracy_m,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StopArriveRequest is the payload for a manual stop arrival
type StopArriveRequest struct {
	RoutePointID uuid.UUID `json:"route_point_id"`
}

// StopDepartRequest is the payload for a stop departure with passenger counts
type StopDepartRequest struct {
	RoutePointID uuid.UUID `json:"route_point_id"`
	Boarded      int       `json:"boarded"`
	Alighted     int       `json:"alighted"`
}

// TripPauseRequest carries the reason for an emergency stop
type TripPauseRequest struct {
	Reason string `json:"reason"`
}

// TripCompleteRequest carries optional completion notes
type TripCompleteRequest struct {
	Notes string `json:"notes,omitempty"`
}

// TripCancelRequest carries the reason for a dispatcher-initiated hard cancel
type TripCancelRequest struct {
	Reason string `json:"reason"`
}

// TripDetail is the read model for dashboards and the driver app
type TripDetail struct {
	Trip           *Trip       `json:"trip"`
	Stops          []*TripStop `json:"stops"`
	LatestLocation *Location   `json:"latest_location,omitempty"`
}
