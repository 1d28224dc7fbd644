package utils

import (
	"strings"

	"github.com/mmcloughlin/geohash"
)

// directionsPrecision is ~5m cells, below map display resolution
const directionsPrecision = 8

// DirectionsCacheDigest builds a stable digest for a waypoint list (entries
// are [lon, lat]). Waypoints are geohash-encoded so coordinate jitter below
// display resolution still hits the cache.
func DirectionsCacheDigest(waypoints [][]float64) string {
	parts := make([]string, 0, len(waypoints))
	for _, wp := range waypoints {
		if len(wp) < 2 {
			continue
		}
		parts = append(parts, geohash.EncodeWithPrecision(wp[1], wp[0], directionsPrecision))
	}
	return strings.Join(parts, ",")
}
