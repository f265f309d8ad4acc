// Package geo provides the flat great-circle math used to scope alerts.
// It is deliberately approximate: no spatial index, no geodesic models.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in decimal degrees. Callers validate coordinates first;
// the function itself has no error conditions.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// BoundingBox returns a lat/lng envelope that contains every point within
// radiusKm of the center. Used as a cheap database prefilter before the
// exact Haversine check; near the poles the longitude span degenerates to
// the full range.
func BoundingBox(lat, lng, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := radiusKm / 111.0
	minLat = lat - latDelta
	maxLat = lat + latDelta

	cosLat := math.Cos(toRadians(lat))
	if cosLat < 1e-6 {
		return minLat, maxLat, -180, 180
	}
	lngDelta := radiusKm / (111.0 * cosLat)
	return minLat, maxLat, lng - lngDelta, lng + lngDelta
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
