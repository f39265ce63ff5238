package usecase

import (
	"context"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// GetFleetStats computes trip counts, average delay and on-time rate over
// the given tenant scope and time window. The aggregation is read-only and
// returns zeroed metrics for empty windows.
func (uc *tripUC) GetFleetStats(ctx context.Context, filter models.StatsFilter) (*models.FleetStats, error) {
	return uc.repo.GetFleetStats(ctx, filter)
}
