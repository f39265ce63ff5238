package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStopStatus represents the status of a planned stop visit
type TripStopStatus string

const (
	TripStopStatusPending  TripStopStatus = "PENDING"
	TripStopStatusArrived  TripStopStatus = "ARRIVED"
	TripStopStatusDeparted TripStopStatus = "DEPARTED"
	TripStopStatusSkipped  TripStopStatus = "SKIPPED"
)

// Reached reports whether the vehicle has already arrived at (or left) the stop.
func (s TripStopStatus) Reached() bool {
	return s == TripStopStatusArrived || s == TripStopStatusDeparted
}

// TripStop represents one planned visit to one route point during one trip
type TripStop struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	TripID       uuid.UUID      `json:"trip_id" db:"trip_id"`
	RoutePointID uuid.UUID      `json:"route_point_id" db:"route_point_id"`
	StopOrder    int            `json:"stop_order" db:"stop_order"`
	ScheduledAt  time.Time      `json:"scheduled_at" db:"scheduled_at"`
	ArrivedAt    *time.Time     `json:"arrived_at,omitempty" db:"arrived_at"`
	DepartedAt   *time.Time     `json:"departed_at,omitempty" db:"departed_at"`
	Status       TripStopStatus `json:"status" db:"status"`
	DelayMinutes int            `json:"delay_minutes" db:"delay_minutes"`
	Boarded      int            `json:"boarded" db:"boarded"`
	Alighted     int            `json:"alighted" db:"alighted"`

	// Route point coordinates and name, joined in on read for proximity
	// checks and dashboards. Never written through this struct.
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	StopName  string  `json:"stop_name" db:"stop_name"`
}
