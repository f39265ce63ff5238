package constants

// Redis key patterns and hash fields for the live location cache
const (
	// KeyTripLocation holds the latest location hash per trip
	KeyTripLocation = "trip:location:%s"

	// KeyVehicleGeo is the GEO set of vehicles currently on an active trip
	KeyVehicleGeo = "fleet:vehicles:geo"

	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldTimestamp = "timestamp"
)
