package trips

import "errors"

// Validation failures returned to callers. These are expected outcomes,
// not faults; handlers map them to specific HTTP statuses.
var (
	ErrDriverBusy      = errors.New("driver already has an active trip")
	ErrVehicleBusy     = errors.New("vehicle already has an active trip")
	ErrEmptyRoute      = errors.New("route has no stops")
	ErrTripNotActive   = errors.New("trip is not active")
	ErrTripNotPaused   = errors.New("trip is not paused")
	ErrStopNotArrived  = errors.New("stop has not been arrived at")
	ErrTripNotFound    = errors.New("trip not found")
	ErrStopNotFound    = errors.New("trip stop not found")
	ErrRouteNotFound   = errors.New("route not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrShiftNotFound   = errors.New("shift not found")
)
