package geo

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marsaAlam = NewPoint(25.067, 34.893)

func TestRandomPointInDiscZeroRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		p := RandomPointInDisc(rng, marsaAlam, 0)
		assert.Equal(t, marsaAlam, p)
	}
}

func TestRandomPointInDiscStaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const radiusKm = 40.0

	for i := 0; i < 10000; i++ {
		p := RandomPointInDisc(rng, marsaAlam, radiusKm)

		d := DistanceKm(marsaAlam, p)
		require.LessOrEqual(t, d, radiusKm*(1+1e-9))

		require.GreaterOrEqual(t, p.Lat, -90.0)
		require.LessOrEqual(t, p.Lat, 90.0)
		require.GreaterOrEqual(t, p.Lng, -180.0)
		require.LessOrEqual(t, p.Lng, 180.0)
	}
}

// Uniform-by-area sampling means the distance CDF is (d/R)^2: the median
// distance sits at R/sqrt(2), and a quarter of the points land within R/2.
// Uniform-in-distance sampling would put the median at R/2 and half the
// points within R/2, far outside the tolerances below.
func TestRandomPointInDiscUniformByArea(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const (
		radiusKm = 40.0
		samples  = 10000
	)

	distances := make([]float64, 0, samples)
	within := 0
	for i := 0; i < samples; i++ {
		p := RandomPointInDisc(rng, marsaAlam, radiusKm)
		d := DistanceKm(marsaAlam, p)

		distances = append(distances, d)
		if d <= radiusKm/2 {
			within++
		}
	}

	sort.Float64s(distances)
	median := distances[samples/2]
	assert.InDelta(t, radiusKm*0.7071, median, radiusKm*0.03)

	assert.InDelta(t, 0.25, float64(within)/samples, 0.03)
}

func TestRandomPointInDiscWrapsAntimeridian(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	center := NewPoint(0, 179.99)
	const radiusKm = 50.0

	wrapped := false
	for i := 0; i < 1000; i++ {
		p := RandomPointInDisc(rng, center, radiusKm)

		require.LessOrEqual(t, DistanceKm(center, p), radiusKm*(1+1e-9))
		require.GreaterOrEqual(t, p.Lng, -180.0)
		require.LessOrEqual(t, p.Lng, 180.0)

		if p.Lng < 0 {
			wrapped = true
		}
	}

	assert.True(t, wrapped, "a 50km disc at lng 179.99 must produce points past the antimeridian")
}

func TestRandomPointInDiscNearPole(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	center := NewPoint(89.9, 0)

	for i := 0; i < 1000; i++ {
		p := RandomPointInDisc(rng, center, 50)
		require.LessOrEqual(t, p.Lat, 90.0)
		require.GreaterOrEqual(t, p.Lng, -180.0)
		require.LessOrEqual(t, p.Lng, 180.0)
	}
}

func TestDistanceKm(t *testing.T) {
	// Marsa Alam to Hurghada is roughly 265km great-circle.
	hurghada := NewPoint(27.258, 33.812)

	d := DistanceKm(marsaAlam, hurghada)
	assert.InDelta(t, 266, d, 15)

	assert.Zero(t, DistanceKm(marsaAlam, marsaAlam))
}
