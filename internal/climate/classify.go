package climate

import (
	"planetgen/internal/planet"
)

// ClimateZone is the thermal band a location falls into, from its average
// annual temperature.
type ClimateZone uint8

const (
	ClimatePolar ClimateZone = iota
	ClimateSubpolar
	ClimateBoreal
	ClimateCoolTemperate
	ClimateWarmTemperate
	ClimateSubtropical
	ClimateTropical
	ClimateSupertropical
)

var climateZoneNames = [...]string{
	"polar", "subpolar", "boreal", "cool-temperate",
	"warm-temperate", "subtropical", "tropical", "supertropical",
}

func (z ClimateZone) String() string {
	if int(z) < len(climateZoneNames) {
		return climateZoneNames[z]
	}
	return "unknown"
}

// climateZoneCeilings are the upper average-temperature bounds in Kelvin of
// each zone; the last zone is open-ended.
var climateZoneCeilings = [...]float64{
	253.15, // polar: below -20 C
	263.15, // subpolar
	273.15, // boreal
	283.15, // cool temperate
	291.15, // warm temperate
	297.15, // subtropical
	308.15, // tropical
}

// ZoneForTemperature returns the climate zone for an average annual
// temperature in Kelvin.
func ZoneForTemperature(avg float64) ClimateZone {
	for i, ceiling := range climateZoneCeilings {
		if avg < ceiling {
			return ClimateZone(i)
		}
	}
	return ClimateSupertropical
}

// EcologyZone is the moisture band of a location, Holdridge-style: the same
// rainfall supports lusher ecology in cooler zones.
type EcologyZone uint8

const (
	EcologyMarine EcologyZone = iota
	EcologyDesert
	EcologyScrub
	EcologySteppe
	EcologyDryForest
	EcologyMoistForest
	EcologyWetForest
	EcologyRainForest
)

var ecologyZoneNames = [...]string{
	"marine", "desert", "scrub", "steppe",
	"dry-forest", "moist-forest", "wet-forest", "rain-forest",
}

func (z EcologyZone) String() string {
	if int(z) < len(ecologyZoneNames) {
		return ecologyZoneNames[z]
	}
	return "unknown"
}

// ecologyBaseThresholds are annual precipitation ceilings in mm for the
// warm-temperate zone; other zones scale them by evapotranspiration demand.
var ecologyBaseThresholds = [...]float64{125, 250, 500, 1000, 2000, 4000}

// ecologyZoneScale approximates how much more (or less) rain each climate
// zone needs to support the same ecology.
var ecologyZoneScale = [...]float64{0.25, 0.35, 0.5, 0.7, 1, 1.3, 1.6, 2}

// EcologyFor returns the ecology zone for a climate zone and annual
// precipitation in mm.
func EcologyFor(zone ClimateZone, annualPrecipitation float64) EcologyZone {
	scale := 1.0
	if int(zone) < len(ecologyZoneScale) {
		scale = ecologyZoneScale[zone]
	}
	for i, base := range ecologyBaseThresholds {
		if annualPrecipitation < base*scale {
			return EcologyZone(i + 1) // skip EcologyMarine
		}
	}
	return EcologyRainForest
}

// Biome is the discrete surface category a map cell renders as.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeSeaIce
	BiomeIceSheet
	BiomePolarDesert
	BiomeColdDesert
	BiomeTundra
	BiomeTaiga
	BiomeDesert
	BiomeSteppe
	BiomeShrubland
	BiomeTemperateForest
	BiomeTemperateRainForest
	BiomeSavanna
	BiomeMonsoonForest
	BiomeRainForest
)

var biomeNames = [...]string{
	"ocean", "sea-ice", "ice-sheet", "polar-desert", "cold-desert",
	"tundra", "taiga", "desert", "steppe", "shrubland",
	"temperate-forest", "temperate-rain-forest", "savanna",
	"monsoon-forest", "rain-forest",
}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

// biomeTable maps (climate zone, ecology zone) to a biome. Several
// combinations collapse to shared categories. Index 0 of the inner dimension
// (marine ecology) is unused on land.
var biomeTable = map[ClimateZone][8]Biome{
	ClimatePolar: {BiomeOcean, BiomePolarDesert, BiomeTundra, BiomeTundra,
		BiomeTundra, BiomeTundra, BiomeTundra, BiomeTundra},
	ClimateSubpolar: {BiomeOcean, BiomePolarDesert, BiomeTundra, BiomeTundra,
		BiomeTaiga, BiomeTaiga, BiomeTaiga, BiomeTaiga},
	ClimateBoreal: {BiomeOcean, BiomeColdDesert, BiomeTundra, BiomeSteppe,
		BiomeTaiga, BiomeTaiga, BiomeTaiga, BiomeTaiga},
	ClimateCoolTemperate: {BiomeOcean, BiomeColdDesert, BiomeShrubland, BiomeSteppe,
		BiomeTemperateForest, BiomeTemperateForest, BiomeTemperateRainForest, BiomeTemperateRainForest},
	ClimateWarmTemperate: {BiomeOcean, BiomeDesert, BiomeShrubland, BiomeSteppe,
		BiomeTemperateForest, BiomeTemperateForest, BiomeTemperateRainForest, BiomeTemperateRainForest},
	ClimateSubtropical: {BiomeOcean, BiomeDesert, BiomeShrubland, BiomeSavanna,
		BiomeSavanna, BiomeMonsoonForest, BiomeRainForest, BiomeRainForest},
	ClimateTropical: {BiomeOcean, BiomeDesert, BiomeShrubland, BiomeSavanna,
		BiomeMonsoonForest, BiomeRainForest, BiomeRainForest, BiomeRainForest},
	ClimateSupertropical: {BiomeOcean, BiomeDesert, BiomeSavanna, BiomeSavanna,
		BiomeRainForest, BiomeRainForest, BiomeRainForest, BiomeRainForest},
}

// Classification bundles the three category assignments for one cell.
type Classification struct {
	Climate ClimateZone `json:"climate"`
	Ecology EcologyZone `json:"ecology"`
	Biome   Biome       `json:"biome"`
}

// Classify maps a temperature range, annual precipitation (mm), elevation
// (m) and latitude to discrete categories. It is a pure function: the same
// inputs always give the same result.
//
// Ocean cells (elevation <= 0 on a planet with a hydrosphere) skip the
// terrestrial tables and classify on temperature alone.
func Classify(tr Range, annualPrecipitation, elevation, lat float64, hydrosphere bool) Classification {
	zone := ZoneForTemperature(tr.Average)

	if elevation <= 0 && hydrosphere {
		biome := BiomeOcean
		if tr.Average <= planet.FreezingPoint {
			biome = BiomeSeaIce
		}
		return Classification{Climate: zone, Ecology: EcologyMarine, Biome: biome}
	}

	// Perennial ice: high latitudes that never thaw.
	const iceSheetLatitude = 1.15 // ~66 degrees
	if lat < -iceSheetLatitude || lat > iceSheetLatitude {
		if tr.Max <= planet.FreezingPoint {
			return Classification{Climate: zone, Ecology: EcologyFor(zone, annualPrecipitation), Biome: BiomeIceSheet}
		}
	}

	ecology := EcologyFor(zone, annualPrecipitation)
	return Classification{Climate: zone, Ecology: ecology, Biome: biomeTable[zone][ecology]}
}
