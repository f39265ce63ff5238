package repository

import (
	"context"
	"fmt"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// GetFleetStats aggregates trip counts, average delay and on-time rate over
// a tenant scope and time window. Empty windows produce zeroed metrics.
func (r *TripRepo) GetFleetStats(ctx context.Context, filter models.StatsFilter) (*models.FleetStats, error) {
	stats := &models.FleetStats{}

	err := r.db.GetContext(ctx, stats, `
		SELECT
			COUNT(1) AS total_trips,
			COUNT(1) FILTER (WHERE t.status = 'COMPLETED') AS completed_trips,
			COUNT(1) FILTER (WHERE t.status = 'CANCELLED') AS cancelled_trips,
			COUNT(1) FILTER (WHERE t.status IN ('STARTED','IN_PROGRESS','PAUSED')) AS active_trips
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		WHERE v.tenant_id = $1 AND t.created_at >= $2 AND t.created_at < $3`,
		filter.TenantID, filter.From, filter.To,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate trip counts: %w", err)
	}

	var stopStats struct {
		ArrivedStops    int     `db:"arrived_stops"`
		AvgDelayMinutes float64 `db:"avg_delay_minutes"`
		OnTimeRate      float64 `db:"on_time_rate"`
	}
	err = r.db.GetContext(ctx, &stopStats, `
		SELECT
			COUNT(1) AS arrived_stops,
			COALESCE(AVG(ts.delay_minutes), 0) AS avg_delay_minutes,
			COALESCE(AVG(CASE WHEN ts.delay_minutes <= $4 THEN 1.0 ELSE 0.0 END), 0) AS on_time_rate
		FROM trip_stops ts
		JOIN trips t ON t.id = ts.trip_id
		JOIN vehicles v ON v.id = t.vehicle_id
		WHERE v.tenant_id = $1 AND t.created_at >= $2 AND t.created_at < $3
		  AND ts.arrived_at IS NOT NULL`,
		filter.TenantID, filter.From, filter.To, r.cfg.Trips.OnTimeThresholdMin,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stop delays: %w", err)
	}

	stats.ArrivedStops = stopStats.ArrivedStops
	stats.AvgDelayMinutes = stopStats.AvgDelayMinutes
	stats.OnTimeRate = stopStats.OnTimeRate

	return stats, nil
}
