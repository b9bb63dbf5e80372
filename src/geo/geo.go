// Package geo samples random points on the Earth's surface. Coordinates are
// degrees; distances are kilometers along a great circle.
package geo

import (
	"math"
	"math/rand"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const EarthRadiusKm = 6371.0

type Point struct {
	Lat float64
	Lng float64
}

func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

func DistanceKm(a, b Point) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * EarthRadiusKm
}

// RandomPointInDisc returns a point uniformly distributed by area within the
// disc of radiusKm around center. Drawing the distance as R*sqrt(u) is what
// makes the distribution uniform by area: area grows with the square of the
// radius, so a uniform distance would pile points up near the center.
//
// A zero (or negative) radius always returns the center itself.
func RandomPointInDisc(rng *rand.Rand, center Point, radiusKm float64) Point {
	if radiusKm <= 0 {
		return center
	}

	bearing := s1.Angle(rng.Float64() * 2 * math.Pi)
	distanceKm := radiusKm * math.Sqrt(rng.Float64())

	return destination(center, bearing, distanceKm)
}

// destination projects a point from `from` at the given bearing and
// great-circle distance. The s2 package has no bearing-and-distance helper,
// so the spherical formula is spelled out; Normalized keeps latitude inside
// [-90, 90] and wraps longitude past the antimeridian.
func destination(from Point, bearing s1.Angle, distanceKm float64) Point {
	ll := from.LatLng()
	phi1 := ll.Lat.Radians()
	lambda1 := ll.Lng.Radians()
	delta := distanceKm / EarthRadiusKm
	theta := bearing.Radians()

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(sinPhi2)

	y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
	x := math.Cos(delta) - math.Sin(phi1)*sinPhi2
	lambda2 := lambda1 + math.Atan2(y, x)

	out := s2.LatLng{Lat: s1.Angle(phi2), Lng: s1.Angle(lambda2)}.Normalized()

	return Point{Lat: out.Lat.Degrees(), Lng: out.Lng.Degrees()}
}
