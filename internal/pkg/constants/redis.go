package constants

// Redis key formats
const (
	// Directions cache, keyed by a geohash digest of the waypoint list
	KeyDirectionsCache = "directions:%s:%s" // Format: directions:{profile}:{waypoint_digest}
)
