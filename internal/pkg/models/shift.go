package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftStatus represents the status of a driver's on-duty shift
type ShiftStatus string

const (
	ShiftStatusActive    ShiftStatus = "ACTIVE"
	ShiftStatusEmergency ShiftStatus = "EMERGENCY"
	ShiftStatusCompleted ShiftStatus = "COMPLETED"
)

// Shift represents a driver's on-duty period, coupled 1:1 with a trip's active lifetime
type Shift struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	TripID     uuid.UUID   `json:"trip_id" db:"trip_id"`
	DriverID   uuid.UUID   `json:"driver_id" db:"driver_id"`
	VehicleID  uuid.UUID   `json:"vehicle_id" db:"vehicle_id"`
	CheckInAt  time.Time   `json:"check_in_at" db:"check_in_at"`
	CheckOutAt *time.Time  `json:"check_out_at,omitempty" db:"check_out_at"`
	Status     ShiftStatus `json:"status" db:"status"`
	Notes      string      `json:"notes,omitempty" db:"notes"`
}
