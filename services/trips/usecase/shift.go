package usecase

import (
	"time"

	"github.com/fleetops/shuttletrack/internal/pkg/models"
)

// Shift status is a deterministic function of trip status: an active trip
// has an ACTIVE shift, a paused trip an EMERGENCY shift, and a finished trip
// a COMPLETED shift. These helpers keep the two in lock step; callers persist
// the trip and shift together in one transaction.

func markEmergency(shift *models.Shift, reason string) {
	shift.Status = models.ShiftStatusEmergency
	shift.Notes = reason
}

func clearEmergency(shift *models.Shift) {
	shift.Status = models.ShiftStatusActive
	shift.Notes = ""
}

func closeShift(shift *models.Shift, at time.Time) {
	shift.Status = models.ShiftStatusCompleted
	shift.CheckOutAt = &at
}
