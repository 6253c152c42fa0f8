package surfacemap

import (
	"bytes"
	"testing"

	"planetgen/internal/climate"
	"planetgen/internal/planet"
	"planetgen/internal/terrain"
)

func testPlanet(t *testing.T, mutate func(*planet.Params)) *planet.Planet {
	t.Helper()
	params := planet.Params{
		Name:               "map-test",
		Kind:               planet.KindRocky,
		Radius:             6.371e6,
		Mass:               5.972e24,
		RotationalPeriod:   86400,
		AxialTilt:          0.41,
		Albedo:             0.3,
		NormalizedSeaLevel: 0.1,
		Seeds: planet.Seeds{
			TerrainA:      31,
			TerrainB:      32,
			TerrainC:      33,
			Precipitation: 34,
			Resource:      35,
		},
		Atmosphere: &planet.Atmosphere{
			Mass:                 5.1e18,
			ScaleHeight:          8500,
			Height:               80000,
			GreenhouseFactor:     0.95,
			AveragePrecipitation: 990,
			MaxPrecipitation:     11000,
			SnowToRainRatio:      10,
			WaterVaporRatio:      0.004,
		},
		Orbit: &planet.Orbit{
			SemiMajorAxis:  1.496e11,
			Eccentricity:   0.0167,
			StarLuminosity: 3.828e26,
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

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 12
	return cfg
}

func TestBuildDimensionsAndBounds(t *testing.T) {
	p := testPlanet(t, nil)
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := m.checkComplete(); err != nil {
		t.Fatalf("bundle incomplete: %v", err)
	}
	if m.Width != 24 || m.Height != 12 || m.Seasons != 4 {
		t.Fatalf("got %dx%d seasons=%d", m.Width, m.Height, m.Seasons)
	}
	for i, tr := range m.Temperature.Cells {
		if !(tr.Min <= tr.Average && tr.Average <= tr.Max) {
			t.Fatalf("cell %d: unordered temperature range %+v", i, tr)
		}
	}
	for s := 0; s < m.Seasons; s++ {
		for i := range m.SeasonPrecipitation[s].Cells {
			precip := m.SeasonPrecipitation[s].Cells[i]
			snow := m.SeasonSnowfall[s].Cells[i]
			if precip < 0 || snow < 0 {
				t.Fatalf("season %d cell %d: negative precipitation %.2f / snow %.2f",
					s, i, precip, snow)
			}
		}
	}
	for i, hum := range m.Humidity.Cells {
		if hum < 0 {
			t.Fatalf("cell %d: negative humidity %.3f", i, hum)
		}
	}
	for i, r := range m.Resources.Cells {
		if r < 0 || r > 1 {
			t.Fatalf("cell %d: resource richness %.3f out of [0,1]", i, r)
		}
	}
	if m.LandFraction < 0 || m.LandFraction > 1 {
		t.Fatalf("land fraction %.3f out of [0,1]", m.LandFraction)
	}
	if m.TotalPrecipitation <= 0 {
		t.Fatalf("expected some precipitation, got %.3f", m.TotalPrecipitation)
	}
}

func TestBuildAnnualSumsSeasons(t *testing.T) {
	p := testPlanet(t, nil)
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range m.AnnualPrecipitation.Cells {
		var sum float64
		for s := 0; s < m.Seasons; s++ {
			sum += m.SeasonPrecipitation[s].Cells[i]
		}
		if m.AnnualPrecipitation.Cells[i] != sum {
			t.Fatalf("cell %d: annual %.4f != season sum %.4f",
				i, m.AnnualPrecipitation.Cells[i], sum)
		}
	}
}

func TestBuildDeterministicAcrossWorkerCounts(t *testing.T) {
	p := testPlanet(t, nil)
	var encoded [][]byte
	for _, workers := range []int{1, 3, 8} {
		cfg := testConfig()
		cfg.Workers = workers
		m, err := Build(p, cfg)
		if err != nil {
			t.Fatalf("Build with %d workers: %v", workers, err)
		}
		data, err := Marshal(m)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		encoded = append(encoded, data)
	}
	for i := 1; i < len(encoded); i++ {
		if !bytes.Equal(encoded[0], encoded[i]) {
			t.Fatalf("bundle differs between worker counts")
		}
	}
}

func TestBuildFlatPlanetHasNoRelief(t *testing.T) {
	p := testPlanet(t, func(params *planet.Params) {
		params.FlatSurface = true
	})
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, elev := range m.Elevation.Cells {
		if elev != 0 {
			t.Fatalf("cell %d: flat planet elevation %.2f", i, elev)
		}
	}
	if m.LandFraction != 0 {
		t.Fatalf("flat hydrosphere planet should be all ocean, land fraction %.3f", m.LandFraction)
	}
}

func TestBuildNoHydrosphereIsAllLand(t *testing.T) {
	p := testPlanet(t, func(params *planet.Params) {
		params.Hydrosphere.Present = false
	})
	m, err := Build(p, testConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.LandFraction != 1 {
		t.Fatalf("land fraction %.3f, want 1", m.LandFraction)
	}
	for i, b := range m.Biome.Cells {
		if b == climate.BiomeOcean || b == climate.BiomeSeaIce {
			t.Fatalf("cell %d classified as %s without a hydrosphere", i, b)
		}
	}
}

func TestBuildZeroSeasonsSkipsPrecipitation(t *testing.T) {
	p := testPlanet(t, nil)
	cfg := testConfig()
	cfg.Seasons = 0
	m, err := Build(p, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.SeasonPrecipitation) != 0 || len(m.SeasonSnowfall) != 0 {
		t.Fatalf("expected no season grids, got %d/%d",
			len(m.SeasonPrecipitation), len(m.SeasonSnowfall))
	}
	for i, v := range m.AnnualPrecipitation.Cells {
		if v != 0 {
			t.Fatalf("cell %d: precipitation %.2f without seasons", i, v)
		}
	}
}

func TestBuildSeasonsRequireAtmosphere(t *testing.T) {
	p := testPlanet(t, func(params *planet.Params) {
		params.Atmosphere = nil
	})
	if _, err := Build(p, testConfig()); err == nil {
		t.Fatal("expected error mapping seasons without an atmosphere")
	}
	cfg := testConfig()
	cfg.Seasons = 0
	if _, err := Build(p, cfg); err != nil {
		t.Fatalf("airless planet without seasons should map: %v", err)
	}
}

func TestBuildRegion(t *testing.T) {
	p := testPlanet(t, nil)
	cfg := testConfig()
	cfg.Width, cfg.Height = 6, 4
	cfg.Region = Region{LatMin: 0.1, LatMax: 0.9, LonMin: -1.2, LonMax: 0.4}
	part, err := Build(p, cfg)
	if err != nil {
		t.Fatalf("Build region: %v", err)
	}
	if part.Region != cfg.Region {
		t.Fatalf("bundle region %+v, want %+v", part.Region, cfg.Region)
	}

	// Region cells sample the same planet as any other map, so elevation at
	// each cell center matches the terrain model exactly.
	model := terrain.New(p)
	rf := part.Frame()
	for y := 0; y < part.Height; y++ {
		lat := rf.LatForRow(y, part.Height)
		for x := 0; x < part.Width; x++ {
			lon := rf.LonForCol(x, part.Width)
			if got, want := part.Elevation.At(x, y), model.ElevationAt(lat, lon); got != want {
				t.Fatalf("cell (%d,%d): elevation %.4f, want %.4f", x, y, got, want)
			}
		}
	}
}

func TestBuildEqualAreaProjection(t *testing.T) {
	p := testPlanet(t, nil)
	cfg := testConfig()
	cfg.Projection = EqualArea
	m, err := Build(p, cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Projection != EqualArea {
		t.Fatalf("projection %q recorded, want %q", m.Projection, EqualArea)
	}

	cfg.Height = 11
	if _, err := Build(p, cfg); err == nil {
		t.Fatal("expected error for odd equal-area height")
	}
}
