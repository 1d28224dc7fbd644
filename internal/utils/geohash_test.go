package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionsCacheDigest(t *testing.T) {
	waypoints := [][]float64{
		{106.8456, -6.2088},
		{106.8650, -6.1751},
	}

	digest := DirectionsCacheDigest(waypoints)
	assert.Len(t, strings.Split(digest, ","), 2)

	// Same waypoints produce the same digest
	assert.Equal(t, digest, DirectionsCacheDigest(waypoints))

	// Jitter below display resolution hits the same digest
	jittered := [][]float64{
		{106.8456001, -6.2088001},
		{106.8650001, -6.1751001},
	}
	assert.Equal(t, digest, DirectionsCacheDigest(jittered))

	// A different route produces a different digest
	other := [][]float64{
		{107.6098, -6.9147},
		{106.8650, -6.1751},
	}
	assert.NotEqual(t, digest, DirectionsCacheDigest(other))
}

func TestDirectionsCacheDigest_SkipsMalformedWaypoints(t *testing.T) {
	digest := DirectionsCacheDigest([][]float64{
		{106.8456, -6.2088},
		{106.8650},
	})
	assert.Len(t, strings.Split(digest, ","), 1)
}
