package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographic point with a capture timestamp
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationSample represents a single GPS observation tied to a trip and vehicle.
// Samples are append-only; they are never mutated or deleted.
type LocationSample struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TripID     uuid.UUID `json:"trip_id" db:"trip_id"`
	VehicleID  uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	SpeedKph   *float64  `json:"speed_kph,omitempty" db:"speed_kph"`
	Heading    *float64  `json:"heading,omitempty" db:"heading"`
	AccuracyM  *float64  `json:"accuracy_m,omitempty" db:"accuracy_m"`
	Geohash    string    `json:"geohash" db:"geohash"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
