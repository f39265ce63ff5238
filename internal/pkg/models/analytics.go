package models

import (
	"time"

	"github.com/google/uuid"
)

// StatsFilter scopes a fleet analytics query to a tenant and time window
type StatsFilter struct {
	TenantID uuid.UUID `json:"tenant_id"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
}

// FleetStats summarizes delay and on-time performance over completed trips
type FleetStats struct {
	TotalTrips      int     `json:"total_trips" db:"total_trips"`
	CompletedTrips  int     `json:"completed_trips" db:"completed_trips"`
	CancelledTrips  int     `json:"cancelled_trips" db:"cancelled_trips"`
	ActiveTrips     int     `json:"active_trips" db:"active_trips"`
	ArrivedStops    int     `json:"arrived_stops" db:"arrived_stops"`
	AvgDelayMinutes float64 `json:"avg_delay_minutes" db:"avg_delay_minutes"`
	OnTimeRate      float64 `json:"on_time_rate" db:"on_time_rate"`
}
