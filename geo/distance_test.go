package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visitcacapava/checkin-api/schema"
)

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	points := []schema.Location{
		{Latitude: 0, Longitude: 0},
		{Latitude: -30.5144, Longitude: -53.4914},
		{Latitude: 89.9, Longitude: 179.9},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p, p))
	}
}

func TestDistanceMetersSymmetry(t *testing.T) {
	a := schema.Location{Latitude: -30.5144, Longitude: -53.4914}
	b := schema.Location{Latitude: -30.5382, Longitude: -53.4811}

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMetersKnownDistance(t *testing.T) {
	// Pedra do Segredo to the Caçapava do Sul main square, roughly 5.4 km.
	a := schema.Location{Latitude: -30.5614, Longitude: -53.5078}
	b := schema.Location{Latitude: -30.5144, Longitude: -53.4914}

	d := DistanceMeters(a, b)
	assert.InDelta(t, 5400, d, 300)
}

func TestDistanceMetersSmallOffset(t *testing.T) {
	// ~0.001 degree of latitude is ~111 m everywhere.
	a := schema.Location{Latitude: -30.5, Longitude: -53.49}
	b := schema.Location{Latitude: -30.501, Longitude: -53.49}

	assert.InDelta(t, 111.2, DistanceMeters(a, b), 1)
}

func TestWithinRadius(t *testing.T) {
	a := schema.Location{Latitude: -30.5, Longitude: -53.49}
	near := schema.Location{Latitude: -30.5005, Longitude: -53.49}  // ~55 m
	far := schema.Location{Latitude: -30.5015, Longitude: -53.49}   // ~166 m

	assert.True(t, WithinRadius(a, near, 100))
	assert.False(t, WithinRadius(a, far, 100))
	assert.True(t, WithinRadius(a, a, 0))
}
