package constants

// NATS subjects for trip lifecycle and stop progression events
const (
	SubjectTripStarted   = "trips.started"
	SubjectTripPaused    = "trips.paused"
	SubjectTripResumed   = "trips.resumed"
	SubjectTripCompleted = "trips.completed"
	SubjectTripCancelled = "trips.cancelled"
	SubjectStopArrived   = "trips.stop.arrived"
	SubjectStopDeparted  = "trips.stop.departed"
)

// NSQ topics for high-frequency telemetry
const (
	TopicLocationSamples = "fleet.location.samples"
)
