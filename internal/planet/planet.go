// Package planet defines the immutable planetary record consumed by the
// terrain, climate and surface-map engines. A Planet is produced in two
// phases: a Params value (hand-written, loaded from YAML, or randomly
// generated) is validated and built into a Planet with every derived
// quantity computed eagerly.
package planet

import (
	"github.com/google/uuid"

	"planetgen/internal/geom"
	"planetgen/pkg/astro"
)

const (
	// GravitationalConstant in m^3/(kg s^2).
	GravitationalConstant = 6.674e-11

	// maxElevationConstant divided by surface gravity gives the theoretical
	// maximum elevation in meters (K ~ 2e5 puts Earth near 20 km).
	maxElevationConstant = 2e5

	// FreezingPoint of water in Kelvin.
	FreezingPoint = 273.15
)

// Seeds carries the fixed integer seeds of a planet. They are assigned once
// at creation and never regenerated, which is what makes every derived
// terrain, precipitation and resource field reproducible.
type Seeds struct {
	TerrainA      int64 `yaml:"terrain_a" json:"terrainA"`
	TerrainB      int64 `yaml:"terrain_b" json:"terrainB"`
	TerrainC      int64 `yaml:"terrain_c" json:"terrainC"`
	Precipitation int64 `yaml:"precipitation" json:"precipitation"`
	Resource      int64 `yaml:"resource" json:"resource"`
}

// Atmosphere holds the atmospheric parameters the climate model depends on.
type Atmosphere struct {
	Mass                 float64 `yaml:"mass" json:"mass"`                                  // kg
	ScaleHeight          float64 `yaml:"scale_height" json:"scaleHeight"`                   // m
	Height               float64 `yaml:"height" json:"height"`                              // m, top of weather
	GreenhouseFactor     float64 `yaml:"greenhouse_factor" json:"greenhouseFactor"`
	AveragePrecipitation float64 `yaml:"average_precipitation" json:"averagePrecipitation"` // mm/year
	MaxPrecipitation     float64 `yaml:"max_precipitation" json:"maxPrecipitation"`         // mm/year
	SnowToRainRatio      float64 `yaml:"snow_to_rain_ratio" json:"snowToRainRatio"`
	WaterVaporRatio      float64 `yaml:"water_vapor_ratio" json:"waterVaporRatio"` // kg water / kg air
}

// HasWaterVapor reports whether the atmosphere carries enough water vapor to
// use the moist lapse rate.
func (a *Atmosphere) HasWaterVapor() bool {
	return a != nil && a.WaterVaporRatio > 0
}

// Orbit describes the planet's orbit around its star. The engine only needs
// the shape of the ellipse and the star's luminosity; true anomaly at a given
// time is supplied by the caller.
type Orbit struct {
	SemiMajorAxis  float64 `yaml:"semi_major_axis" json:"semiMajorAxis"` // m
	Eccentricity   float64 `yaml:"eccentricity" json:"eccentricity"`
	Inclination    float64 `yaml:"inclination" json:"inclination"`        // rad
	StarLuminosity float64 `yaml:"star_luminosity" json:"starLuminosity"` // W
}

// PeriapsisDistance returns the orbit's closest approach in meters.
func (o *Orbit) PeriapsisDistance() float64 {
	return astro.PeriapsisDistance(o.SemiMajorAxis, o.Eccentricity)
}

// ApoapsisDistance returns the orbit's farthest distance in meters.
func (o *Orbit) ApoapsisDistance() float64 {
	return astro.ApoapsisDistance(o.SemiMajorAxis, o.Eccentricity)
}

// DistanceAt returns the star-planet distance at the given true anomaly.
func (o *Orbit) DistanceAt(trueAnomaly float64) float64 {
	return astro.OrbitalDistance(o.SemiMajorAxis, o.Eccentricity, trueAnomaly)
}

// Hydrosphere records whether the planet carries surface water. Without one,
// every coordinate counts as land for precipitation and biome aggregation.
type Hydrosphere struct {
	Present bool `yaml:"present" json:"present"`
}

// Planet is the immutable planetary record. All derived quantities are
// computed once by Params.Build; nothing here mutates afterwards.
type Planet struct {
	ID   uuid.UUID
	Name string
	Kind Kind

	Radius           float64 // m
	Mass             float64 // kg
	RotationalPeriod float64 // s
	AxialTilt        float64 // rad
	AxialPrecession  float64 // rad
	AngleOfRotation  float64 // rad
	Albedo           float64
	FlatSurface      bool

	Seeds       Seeds
	Atmosphere  *Atmosphere
	Orbit       *Orbit
	Hydrosphere Hydrosphere

	// Derived at construction.
	SurfaceGravity     float64 // m/s^2
	MaxElevation       float64 // m; 0 for flat bodies
	NormalizedSeaLevel float64 // fraction of MaxElevation
	SeaLevel           float64 // m, NormalizedSeaLevel * MaxElevation

	surface geom.Surface
}

// Surface returns the precomputed spherical geometry of the planet.
func (p *Planet) Surface() geom.Surface { return p.surface }

// AtmosphericHeight returns the top of the weather layer in meters, or 0
// when the planet has no atmosphere.
func (p *Planet) AtmosphericHeight() float64 {
	if p.Atmosphere == nil {
		return 0
	}
	return p.Atmosphere.Height
}

// SolsticeAnomalies returns the true anomalies of the northern winter and
// summer solstices.
func (p *Planet) SolsticeAnomalies() (winter, summer float64) {
	return astro.WinterSolsticeAnomaly(p.AxialPrecession),
		astro.SummerSolsticeAnomaly(p.AxialPrecession)
}

// SolarDeclination returns the subsolar latitude at the given true anomaly.
func (p *Planet) SolarDeclination(trueAnomaly float64) float64 {
	return astro.SolarDeclination(p.AxialTilt, trueAnomaly, p.AxialPrecession)
}

// maxElevationFor derives the theoretical maximum elevation from surface
// gravity, jittered +-50% by a 5-sample average of a seeded uniform draw so
// that planets with identical gravity still differ.
func maxElevationFor(surfaceGravity float64, seed int64) float64 {
	if surfaceGravity <= 0 {
		return 0
	}
	rng := newRand(seed)
	var jitter float64
	for i := 0; i < 5; i++ {
		jitter += 0.5 + rng.Float64()
	}
	jitter /= 5
	return maxElevationConstant / surfaceGravity * jitter
}

// surfaceGravityFor returns the gravitational acceleration at the surface.
func surfaceGravityFor(mass, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return GravitationalConstant * mass / (radius * radius)
}
