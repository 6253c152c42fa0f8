package climate

import (
	"testing"

	"planetgen/internal/planet"
)

func rangeAround(avg float64) Range {
	return Range{Min: avg - 10, Max: avg + 10, Average: avg}
}

func TestZoneForTemperature(t *testing.T) {
	cases := []struct {
		avg  float64
		want ClimateZone
	}{
		{200, ClimatePolar},
		{255, ClimateSubpolar},
		{268, ClimateBoreal},
		{278, ClimateCoolTemperate},
		{288, ClimateWarmTemperate},
		{294, ClimateSubtropical},
		{300, ClimateTropical},
		{320, ClimateSupertropical},
	}
	for _, c := range cases {
		if got := ZoneForTemperature(c.avg); got != c.want {
			t.Fatalf("ZoneForTemperature(%.0f) = %s, want %s", c.avg, got, c.want)
		}
	}
}

func TestEcologyScalesWithClimate(t *testing.T) {
	// 600 mm supports forest in a cool zone but only steppe in the tropics.
	cool := EcologyFor(ClimateCoolTemperate, 600)
	tropical := EcologyFor(ClimateTropical, 600)
	if cool <= tropical {
		t.Fatalf("600 mm: cool zone ecology %s should be lusher than tropical %s", cool, tropical)
	}
	if got := EcologyFor(ClimateWarmTemperate, 50); got != EcologyDesert {
		t.Fatalf("50 mm should be desert, got %s", got)
	}
	if got := EcologyFor(ClimateWarmTemperate, 10000); got != EcologyRainForest {
		t.Fatalf("10000 mm should be rain forest, got %s", got)
	}
}

func TestClassifyOceanAndSeaIce(t *testing.T) {
	warm := Classify(rangeAround(290), 1000, -500, 0.3, true)
	if warm.Biome != BiomeOcean || warm.Ecology != EcologyMarine {
		t.Fatalf("warm ocean classified as %+v", warm)
	}
	frozen := Classify(rangeAround(250), 1000, -500, 1.3, true)
	if frozen.Biome != BiomeSeaIce {
		t.Fatalf("frozen ocean classified as %+v", frozen)
	}
}

func TestClassifyNoHydrosphereIsLand(t *testing.T) {
	c := Classify(rangeAround(290), 20, -500, 0.3, false)
	if c.Biome == BiomeOcean || c.Biome == BiomeSeaIce {
		t.Fatalf("dry planet below sea level classified as water: %+v", c)
	}
}

func TestClassifyLandBiomes(t *testing.T) {
	cases := []struct {
		name   string
		tr     Range
		precip float64
		lat    float64
		want   Biome
	}{
		{"hot desert", rangeAround(300), 50, 0.2, BiomeDesert},
		{"tropical rain forest", rangeAround(300), 4000, 0.1, BiomeRainForest},
		{"savanna", rangeAround(300), 700, 0.3, BiomeSavanna},
		{"temperate forest", rangeAround(286), 900, 0.8, BiomeTemperateForest},
		{"steppe", rangeAround(286), 350, 0.8, BiomeSteppe},
		{"taiga", rangeAround(266), 600, 1.0, BiomeTaiga},
		{"tundra", rangeAround(245), 200, 1.1, BiomeTundra},
		{"polar desert", rangeAround(245), 20, 1.0, BiomePolarDesert},
	}
	for _, c := range cases {
		got := Classify(c.tr, c.precip, 100, c.lat, true)
		if got.Biome != c.want {
			t.Fatalf("%s: got %s (climate %s, ecology %s), want %s",
				c.name, got.Biome, got.Climate, got.Ecology, c.want)
		}
	}
}

func TestClassifyIceSheet(t *testing.T) {
	tr := Range{Min: 220, Max: planet.FreezingPoint - 5, Average: 240}
	c := Classify(tr, 300, 100, 1.4, true)
	if c.Biome != BiomeIceSheet {
		t.Fatalf("never-thawing polar land classified as %s", c.Biome)
	}
	// Same range at low latitude stays a normal biome.
	low := Classify(tr, 300, 100, 0.4, true)
	if low.Biome == BiomeIceSheet {
		t.Fatal("low-latitude land should not be an ice sheet")
	}
}

func TestClassifyPure(t *testing.T) {
	tr := rangeAround(280)
	a := Classify(tr, 800, 200, 0.7, true)
	for i := 0; i < 10; i++ {
		if b := Classify(tr, 800, 200, 0.7, true); a != b {
			t.Fatalf("classification not pure: %+v vs %+v", a, b)
		}
	}
}
