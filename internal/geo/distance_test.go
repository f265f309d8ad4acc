package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p[0], p[1], p[0], p[1]))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	cases := [][4]float64{
		{40.7128, -74.0060, 34.0522, -118.2437}, // NYC - LA
		{51.5074, -0.1278, 48.8566, 2.3522},     // London - Paris
		{-1.2921, 36.8219, 59.3293, 18.0686},    // Nairobi - Stockholm
	}
	for _, c := range cases {
		ab := Distance(c[0], c[1], c[2], c[3])
		ba := Distance(c[2], c[3], c[0], c[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// London to Paris is roughly 344 km.
	d := Distance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)

	// One degree of latitude is roughly 111 km.
	d = Distance(0, 0, 1, 0)
	assert.InDelta(t, 111.2, d, 0.5)
}

func TestBoundingBox_ContainsRadius(t *testing.T) {
	lat, lng, radius := 43.65, -79.38, 10.0
	minLat, maxLat, minLng, maxLng := BoundingBox(lat, lng, radius)

	assert.Less(t, minLat, lat)
	assert.Greater(t, maxLat, lat)
	assert.Less(t, minLng, lng)
	assert.Greater(t, maxLng, lng)

	// Corners of the box must be at least radius away from the center.
	assert.GreaterOrEqual(t, Distance(lat, lng, minLat, lng), radius*0.99)
	assert.GreaterOrEqual(t, Distance(lat, lng, lat, minLng), radius*0.99)
}

func TestBoundingBox_NearPole(t *testing.T) {
	_, _, minLng, maxLng := BoundingBox(89.99999, 10, 5)
	assert.Equal(t, -180.0, minLng)
	assert.Equal(t, 180.0, maxLng)
}
