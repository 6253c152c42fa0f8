package geom

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestLatLonVectorRoundTrip(t *testing.T) {
	surfaces := []Surface{
		NewSurface(6.371e6, 0, 0),
		NewSurface(6.371e6, 0.7, 1.9),
		NewSurface(3.4e6, 5.1, 0.2),
	}
	rng := rand.New(rand.NewPCG(42, 0))
	for _, s := range surfaces {
		for i := 0; i < 10000; i++ {
			lat := (rng.Float64() - 0.5) * 0.999 * math.Pi
			lon := (rng.Float64() - 0.5) * 2 * math.Pi
			v := s.LatLonToVector(lat, lon)
			if math.Abs(v.Len()-1) > 1e-9 {
				t.Fatalf("LatLonToVector(%f, %f) not a unit vector: |v| = %f", lat, lon, v.Len())
			}
			gotLat := s.VectorToLat(v)
			gotLon := s.VectorToLon(v)
			if math.Abs(gotLat-lat) > 1e-6 {
				t.Fatalf("latitude round trip: got %f, want %f", gotLat, lat)
			}
			lonDiff := math.Abs(gotLon - lon)
			if lonDiff > math.Pi {
				lonDiff = 2*math.Pi - lonDiff
			}
			if lonDiff > 1e-6 {
				t.Fatalf("longitude round trip: got %f, want %f", gotLon, lon)
			}
		}
	}
}

func TestVectorToLonAtPole(t *testing.T) {
	s := NewSurface(6.371e6, 0, 0)
	pole := s.LatLonToVector(math.Pi/2, 0)
	if got := s.VectorToLon(pole); got != 0 {
		t.Fatalf("longitude at pole = %f, want 0", got)
	}
}

func TestGreatCircleDistance(t *testing.T) {
	s := NewSurface(1, 0, 0)
	a := s.LatLonToVector(0, 0)
	cases := []struct {
		lat, lon, want float64
	}{
		{0, 0, 0},
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, math.Pi / 2},
		{0, math.Pi, math.Pi}, // antipodal
	}
	for _, c := range cases {
		b := s.LatLonToVector(c.lat, c.lon)
		if got := s.GreatCircleDistance(a, b); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("distance to (%f, %f) = %f, want %f", c.lat, c.lon, got, c.want)
		}
	}
}

func TestNormalizeLatLon(t *testing.T) {
	cases := []struct {
		lat, lon, wantLat, wantLon float64
	}{
		{0.3, 0.4, 0.3, 0.4},
		{math.Pi/2 + 0.1, 0, math.Pi/2 - 0.1, math.Pi},
		{-math.Pi/2 - 0.1, 0, -math.Pi/2 + 0.1, math.Pi},
		{0, math.Pi + 0.2, 0, -math.Pi + 0.2},
		{0, -math.Pi - 0.2, 0, math.Pi - 0.2},
	}
	for _, c := range cases {
		lat, lon := NormalizeLatLon(c.lat, c.lon)
		if math.Abs(lat-c.wantLat) > 1e-12 || math.Abs(lon-c.wantLon) > 1e-12 {
			t.Fatalf("NormalizeLatLon(%f, %f) = (%f, %f), want (%f, %f)",
				c.lat, c.lon, lat, lon, c.wantLat, c.wantLon)
		}
	}
}

func TestSlopeFlatAndRamp(t *testing.T) {
	s := NewSurface(6.371e6, 0, 0)

	flat := func(lat, lon float64) float64 { return 1200 }
	if got := s.Slope(0.4, 1.1, flat); got != 0 {
		t.Fatalf("flat terrain slope = %f, want 0", got)
	}

	// Elevation climbing northward at ~1 meter per meter of surface distance.
	ramp := func(lat, lon float64) float64 { return lat * s.Radius }
	got := s.Slope(0.2, 0, ramp)
	if math.Abs(got-1) > 0.01 {
		t.Fatalf("ramp slope = %f, want ~1", got)
	}
}

func TestSlopeAtPoleDoesNotPanic(t *testing.T) {
	s := NewSurface(6.371e6, 0, 0)
	elev := func(lat, lon float64) float64 { return math.Sin(lat) * 1000 }
	got := s.Slope(math.Pi/2, 0, elev)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("slope at pole = %f", got)
	}
}
