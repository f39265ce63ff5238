package models

import "github.com/google/uuid"

// RoutePoint represents one named stop on a route, ordered by StopOrder
type RoutePoint struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RouteID   uuid.UUID `json:"route_id" db:"route_id"`
	Name      string    `json:"name" db:"name"`
	StopOrder int       `json:"stop_order" db:"stop_order"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
}

// Route represents a predefined route with its ordered stop list
type Route struct {
	ID       uuid.UUID    `json:"id" db:"id"`
	TenantID uuid.UUID    `json:"tenant_id" db:"tenant_id"`
	Name     string       `json:"name" db:"name"`
	Points   []RoutePoint `json:"points"`
}

// Vehicle represents a fleet vehicle as consumed from the fleet registry
type Vehicle struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TenantID    uuid.UUID `json:"tenant_id" db:"tenant_id"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	Capacity    int       `json:"capacity" db:"capacity"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}
