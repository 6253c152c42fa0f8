// Package terrain derives surface elevation from a planet's fixed noise
// seeds. Three independently seeded fields are combined so that continents
// stay irregular instead of looking like raw fractal noise.
package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/noise"
	"planetgen/internal/planet"
)

const (
	// elevationFrequency decorrelates the terrain texture scale from the
	// unit-sphere domain.
	elevationFrequency = 100
	// resourceFrequency is the input scale of the resource richness field.
	resourceFrequency = 250
	// combinedGain restores the amplitude lost by multiplying three fields.
	combinedGain = 6

	// Mountain classification thresholds as fractions of max elevation.
	mountainFloorFraction = 0.035
	mountainSureFraction  = 0.085
	mountainLowSlope      = 0.0875
	mountainHighSlope     = 0.035

	// flatEpsilon guards the normalization against near-zero max elevation.
	flatEpsilon = 1e-9
)

// Model answers elevation, slope and resource queries for one planet. It is
// immutable after construction and safe for concurrent use.
type Model struct {
	planet   *planet.Planet
	base     *noise.Field
	irregA   *noise.Field
	irregB   *noise.Field
	resource *noise.DetailField
}

// New constructs the elevation model for a planet, building its noise fields
// from the planet's fixed seeds.
func New(p *planet.Planet) *Model {
	cfg := noise.DefaultConfig()
	return &Model{
		planet:   p,
		base:     noise.NewField(p.Seeds.TerrainA, cfg),
		irregA:   noise.NewField(p.Seeds.TerrainB, cfg),
		irregB:   noise.NewField(p.Seeds.TerrainC, cfg),
		resource: noise.NewDetailField(p.Seeds.Resource),
	}
}

// Planet returns the planet this model was built for.
func (m *Model) Planet() *planet.Planet { return m.planet }

// NormalizedElevationAt returns the sea-level-relative elevation at a surface
// direction as a fraction of max elevation, nominally in [-1, 1]. Flat
// bodies report 0 everywhere.
func (m *Model) NormalizedElevationAt(v mgl64.Vec3) float64 {
	if m.planet.MaxElevation < flatEpsilon {
		return 0
	}
	x := v.X() * elevationFrequency
	y := v.Y() * elevationFrequency
	z := v.Z() * elevationFrequency
	raw := combinedGain *
		m.base.Sample(x, y, z) *
		math.Abs(m.irregA.Sample(x, y, z)) *
		math.Abs(m.irregB.Sample(x, y, z))
	return raw - m.planet.NormalizedSeaLevel
}

// ElevationAt returns the elevation in meters at a latitude/longitude pair.
// Positive values are land, negative values are below sea level.
func (m *Model) ElevationAt(lat, lon float64) float64 {
	return m.NormalizedElevationAt(m.planet.Surface().LatLonToVector(lat, lon)) *
		m.planet.MaxElevation
}

// Slope returns the steepest rise/run ratio among the four one-arcsecond
// neighbors of the coordinate.
func (m *Model) Slope(lat, lon float64) float64 {
	return m.planet.Surface().Slope(lat, lon, m.ElevationAt)
}

// IsMountainous reports whether the coordinate counts as mountain terrain.
// Below 3.5% of max elevation nothing qualifies; above 8.5% everything does;
// in between a slope threshold applies that tightens as elevation grows.
func (m *Model) IsMountainous(lat, lon float64) bool {
	maxElev := m.planet.MaxElevation
	if maxElev < flatEpsilon {
		return false
	}
	elev := m.ElevationAt(lat, lon)
	frac := elev / maxElev
	switch {
	case frac < mountainFloorFraction:
		return false
	case frac > mountainSureFraction:
		return true
	default:
		// Interpolate the slope requirement between the 3.5% and 5% bands.
		t := (frac - mountainFloorFraction) / (0.05 - mountainFloorFraction)
		if t > 1 {
			t = 1
		}
		threshold := mountainLowSlope + t*(mountainHighSlope-mountainLowSlope)
		return m.Slope(lat, lon) > threshold
	}
}

// ResourceRichnessAt returns a resource density scalar in [0, 1] at a surface
// direction, driven by the planet's resource seed.
func (m *Model) ResourceRichnessAt(v mgl64.Vec3) float64 {
	return m.resource.SampleUnit(
		v.X()*resourceFrequency,
		v.Y()*resourceFrequency,
		v.Z()*resourceFrequency,
	)
}
