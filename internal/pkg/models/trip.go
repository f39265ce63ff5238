package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle status of a trip
type TripStatus string

const (
	TripStatusStarted    TripStatus = "STARTED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusPaused     TripStatus = "PAUSED"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// Active reports whether the trip accepts location samples and stop progression.
func (s TripStatus) Active() bool {
	return s == TripStatusStarted || s == TripStatusInProgress
}

// Terminal reports whether the trip can no longer be mutated.
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Trip represents one vehicle's execution of one route by one driver for one shift
type Trip struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	RouteID          uuid.UUID  `json:"route_id" db:"route_id"`
	VehicleID        uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	DriverID         uuid.UUID  `json:"driver_id" db:"driver_id"`
	ScheduledStartAt time.Time  `json:"scheduled_start_at" db:"scheduled_start_at"`
	ScheduledEndAt   time.Time  `json:"scheduled_end_at" db:"scheduled_end_at"`
	ActualStartAt    *time.Time `json:"actual_start_at,omitempty" db:"actual_start_at"`
	ActualEndAt      *time.Time `json:"actual_end_at,omitempty" db:"actual_end_at"`
	Status           TripStatus `json:"status" db:"status"`
	MaxCapacity      int        `json:"max_capacity" db:"max_capacity"`
	PassengerCount   int        `json:"passenger_count" db:"passenger_count"`
	CurrentStopIndex int        `json:"current_stop_index" db:"current_stop_index"`
	Notes            string     `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}
