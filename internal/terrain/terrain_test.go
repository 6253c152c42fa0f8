package terrain

import (
	"math"
	"math/rand/v2"
	"testing"

	"planetgen/internal/planet"
)

func testPlanet(t *testing.T, mutate func(*planet.Params)) *planet.Planet {
	t.Helper()
	params := planet.Params{
		Name:               "terrain-test",
		Kind:               planet.KindRocky,
		Radius:             6.371e6,
		Mass:               5.972e24,
		RotationalPeriod:   86400,
		Albedo:             0.3,
		NormalizedSeaLevel: 0.1,
		Seeds: planet.Seeds{
			TerrainA:      11,
			TerrainB:      12,
			TerrainC:      13,
			Precipitation: 14,
			Resource:      15,
		},
		Hydrosphere: planet.Hydrosphere{Present: true},
	}
	if mutate != nil {
		mutate(&params)
	}
	p, err := params.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestElevationDeterministic(t *testing.T) {
	p := testPlanet(t, nil)
	a := New(p)
	b := New(p)
	rng := rand.New(rand.NewPCG(5, 0))
	for i := 0; i < 1000; i++ {
		lat := (rng.Float64() - 0.5) * math.Pi
		lon := (rng.Float64() - 0.5) * 2 * math.Pi
		if a.ElevationAt(lat, lon) != b.ElevationAt(lat, lon) {
			t.Fatalf("elevation diverged at (%f, %f)", lat, lon)
		}
	}
}

func TestElevationBounds(t *testing.T) {
	p := testPlanet(t, nil)
	m := New(p)
	rng := rand.New(rand.NewPCG(9, 0))
	for i := 0; i < 5000; i++ {
		lat := (rng.Float64() - 0.5) * math.Pi
		lon := (rng.Float64() - 0.5) * 2 * math.Pi
		v := p.Surface().LatLonToVector(lat, lon)
		norm := m.NormalizedElevationAt(v)
		if math.IsNaN(norm) || norm < -1.2 || norm > 1.2 {
			t.Fatalf("normalized elevation out of bounds at (%f, %f): %f", lat, lon, norm)
		}
		meters := m.ElevationAt(lat, lon)
		if want := norm * p.MaxElevation; meters != want {
			t.Fatalf("meters/normalized mismatch: %f vs %f", meters, want)
		}
	}
}

func TestElevationVaries(t *testing.T) {
	m := New(testPlanet(t, nil))
	first := m.ElevationAt(0.3, 0.3)
	varies := false
	for lon := -3.0; lon <= 3.0; lon += 0.25 {
		if m.ElevationAt(0.3, lon) != first {
			varies = true
			break
		}
	}
	if !varies {
		t.Fatal("elevation constant across the planet")
	}
}

func TestFlatPlanetAllZero(t *testing.T) {
	for _, seeds := range []int64{1, 77, 4040} {
		m := New(testPlanet(t, func(p *planet.Params) {
			p.FlatSurface = true
			p.Seeds.TerrainA = seeds
			p.Seeds.TerrainB = seeds + 1
			p.Seeds.TerrainC = seeds + 2
		}))
		rng := rand.New(rand.NewPCG(uint64(seeds), 1))
		for i := 0; i < 200; i++ {
			lat := (rng.Float64() - 0.5) * math.Pi
			lon := (rng.Float64() - 0.5) * 2 * math.Pi
			if got := m.ElevationAt(lat, lon); got != 0 {
				t.Fatalf("flat planet elevation at (%f, %f) = %f, want 0", lat, lon, got)
			}
			if m.IsMountainous(lat, lon) {
				t.Fatalf("flat planet reported mountains at (%f, %f)", lat, lon)
			}
		}
	}
}

func TestSeedsChangeTerrain(t *testing.T) {
	a := New(testPlanet(t, nil))
	b := New(testPlanet(t, func(p *planet.Params) {
		p.Seeds.TerrainA = 9001
	}))
	same := 0
	total := 0
	for lat := -1.2; lat <= 1.2; lat += 0.2 {
		for lon := -3.0; lon <= 3.0; lon += 0.3 {
			total++
			if a.NormalizedElevationAt(a.Planet().Surface().LatLonToVector(lat, lon)) ==
				b.NormalizedElevationAt(b.Planet().Surface().LatLonToVector(lat, lon)) {
				same++
			}
		}
	}
	if same > total/10 {
		t.Fatalf("different terrain seeds agree on %d/%d samples", same, total)
	}
}

func TestResourceRichnessBounds(t *testing.T) {
	p := testPlanet(t, nil)
	m := New(p)
	rng := rand.New(rand.NewPCG(21, 0))
	for i := 0; i < 1000; i++ {
		lat := (rng.Float64() - 0.5) * math.Pi
		lon := (rng.Float64() - 0.5) * 2 * math.Pi
		r := m.ResourceRichnessAt(p.Surface().LatLonToVector(lat, lon))
		if r < 0 || r > 1 || math.IsNaN(r) {
			t.Fatalf("resource richness out of range at (%f, %f): %f", lat, lon, r)
		}
	}
}
