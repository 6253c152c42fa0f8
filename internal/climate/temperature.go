// Package climate derives surface temperature, precipitation and biome
// classification for a planet. The formulas are empirical game-world
// approximations, not physical law; every constant that has been tuned by
// eye lives in Tuning so callers can experiment.
package climate

import (
	"math"

	"planetgen/internal/planet"
	"planetgen/pkg/astro"
)

// Tuning collects the empirical constants of the climate model.
type Tuning struct {
	// InsolationExponent shapes the latitude interpolation between the
	// equatorial and polar insolation factors: weight = cos(lat)^exponent.
	// An older tuning generation used cos(lat*exponent) instead; the power
	// form keeps the weight at exactly 1 on the equator for any exponent.
	InsolationExponent float64
	// EquatorialInsolation is the base insolation factor at the equator
	// before the diurnal correction.
	EquatorialInsolation float64
	// PolarZenithCosine is the fixed cosine of the stellar zenith angle used
	// for the polar air-mass discount.
	PolarZenithCosine float64
	// DryLapseRate in K/m, used when the atmosphere holds no water vapor.
	DryLapseRate float64
	// ColdHumidityRange is the span in Kelvin below freezing across which
	// relative humidity ramps down to zero.
	ColdHumidityRange float64
	// ITCZLatitude bounds the inter-tropical convergence zone in radians.
	ITCZLatitude float64
	// ITCZBoost is the maximum extra humidity multiplier inside the ITCZ.
	ITCZBoost float64
	// HadleyPolarOffset is the dead-zone offset of the Hadley curve.
	HadleyPolarOffset float64
}

// DefaultTuning returns the constants the engine ships with. They come from
// one consistent tuning generation; mixing values across generations gives
// visibly worse maps.
func DefaultTuning() Tuning {
	return Tuning{
		InsolationExponent:   0.7,
		EquatorialInsolation: 0.9,
		PolarZenithCosine:    0.17365, // cos 80 degrees
		DryLapseRate:         0.0098,
		ColdHumidityRange:    16,
		ITCZLatitude:         math.Pi / 16,
		ITCZBoost:            0.4,
		HadleyPolarOffset:    0.05,
	}
}

// Moist lapse rate constants (dry air gas constant, heat of vaporization,
// specific heat, molar mass ratio of water vapor to dry air).
const (
	gasConstantDryAir  = 287.05
	latentHeatVapor    = 2.501e6
	specificHeatDryAir = 1003.5
	vaporMassRatio     = 0.622
)

// TemperatureModel answers temperature queries for one planet. All derived
// factors are computed at construction; the model is immutable afterwards.
type TemperatureModel struct {
	p      *planet.Planet
	tuning Tuning

	bbMean        float64 // blackbody temperature at semi-major distance
	equatorial    float64 // insolation factor at the equator
	polar         float64 // insolation factor at the poles
	greenhouse    float64 // additive greenhouse term, always >= 0
	winterAnomaly float64
	summerAnomaly float64
}

// NewTemperatureModel builds the temperature model. A planet without an
// orbit has no stellar flux and reports 0 K everywhere.
func NewTemperatureModel(p *planet.Planet, tuning Tuning) *TemperatureModel {
	m := &TemperatureModel{p: p, tuning: tuning}
	m.winterAnomaly, m.summerAnomaly = p.SolsticeAnomalies()

	if o := p.Orbit; o != nil {
		m.bbMean = astro.BlackbodyTemperature(o.StarLuminosity, o.SemiMajorAxis, p.Albedo)
	}

	m.equatorial = tuning.EquatorialInsolation * diurnalFactor(p.RotationalPeriod)
	m.polar = m.equatorial * m.polarDiscount()

	if a := p.Atmosphere; a != nil {
		m.greenhouse = math.Max(0, m.bbMean*m.equatorial*a.GreenhouseFactor-m.bbMean)
	}
	return m
}

// diurnalFactor scales insolation by how much of the surface a rotation
// spreads the received flux over. Four discrete regimes by rotational
// period, raised to the 1/4 power as temperature goes with the fourth root
// of flux.
func diurnalFactor(rotationalPeriod float64) float64 {
	var ratio float64
	switch {
	case rotationalPeriod <= 2500:
		ratio = 1
	case rotationalPeriod <= 75000:
		ratio = 0.25
	case rotationalPeriod <= 150000:
		ratio = 1.0 / 3.0
	case rotationalPeriod <= 300000:
		ratio = 0.5
	default:
		ratio = 1
	}
	return math.Pow(1/ratio, 0.25)
}

// polarDiscount returns the fraction of the equatorial insolation factor that
// survives at the poles, accounting for grazing incidence through a long
// atmospheric path.
func (m *TemperatureModel) polarDiscount() float64 {
	cosZ := m.tuning.PolarZenithCosine
	a := m.p.Atmosphere
	if a == nil || a.ScaleHeight <= 0 {
		// No atmosphere to attenuate: only the incidence angle matters.
		return math.Pow(cosZ, 0.25)
	}
	// Schoenberg's homogeneous-atmosphere air mass.
	rh := m.p.Radius / a.ScaleHeight
	airMass := math.Sqrt(rh*rh*cosZ*cosZ+2*rh+1) - rh*cosZ
	if airMass < 1 {
		airMass = 1
	}
	return math.Pow(cosZ/airMass, 0.25)
}

// BlackbodyAt returns the blackbody temperature at the given true anomaly.
func (m *TemperatureModel) BlackbodyAt(trueAnomaly float64) float64 {
	o := m.p.Orbit
	if o == nil {
		return 0
	}
	return astro.BlackbodyTemperature(o.StarLuminosity, o.DistanceAt(trueAnomaly), m.p.Albedo)
}

// MeanBlackbody returns the blackbody temperature at semi-major distance.
func (m *TemperatureModel) MeanBlackbody() float64 { return m.bbMean }

// GreenhouseEffect returns the additive greenhouse warming in Kelvin.
func (m *TemperatureModel) GreenhouseEffect() float64 { return m.greenhouse }

// InsolationFactor interpolates between the polar and equatorial insolation
// factors for a latitude in [-pi/2, pi/2].
func (m *TemperatureModel) InsolationFactor(lat float64) float64 {
	weight := math.Pow(math.Abs(math.Cos(lat)), m.tuning.InsolationExponent)
	return m.polar + (m.equatorial-m.polar)*weight
}

// SeasonalLatitude shifts a latitude by the solar declination at the given
// true anomaly, reflecting back when the shift crosses a pole.
func (m *TemperatureModel) SeasonalLatitude(lat, trueAnomaly float64) float64 {
	shifted := lat + m.p.SolarDeclination(trueAnomaly)
	if shifted > math.Pi/2 {
		return math.Pi - shifted
	}
	if shifted < -math.Pi/2 {
		return -math.Pi - shifted
	}
	return shifted
}

// SurfaceTemperatureAt returns the instantaneous sea-level temperature at a
// seasonal latitude for the given true anomaly.
func (m *TemperatureModel) SurfaceTemperatureAt(trueAnomaly, seasonalLat float64) float64 {
	return m.BlackbodyAt(trueAnomaly)*m.InsolationFactor(seasonalLat) + m.greenhouse
}

// LapseRate returns the temperature fall-off per meter of elevation gain.
// With water vapor in the atmosphere the moist rate applies, otherwise the
// dry adiabatic rate.
func (m *TemperatureModel) LapseRate(surfaceTemp float64) float64 {
	a := m.p.Atmosphere
	if !a.HasWaterVapor() || surfaceTemp <= 0 {
		return m.tuning.DryLapseRate
	}
	g := m.p.SurfaceGravity
	r := a.WaterVaporRatio
	num := g * (1 + latentHeatVapor*r/(gasConstantDryAir*surfaceTemp))
	den := specificHeatDryAir +
		latentHeatVapor*latentHeatVapor*r*vaporMassRatio/(gasConstantDryAir*surfaceTemp*surfaceTemp)
	if den < 1e-9 {
		return m.tuning.DryLapseRate
	}
	return num / den
}

// TemperatureAtElevation adjusts a sea-level temperature for elevation. At or
// above the top of the atmosphere the elevation-independent blackbody mean
// applies; below sea level the surface temperature is returned unchanged.
func (m *TemperatureModel) TemperatureAtElevation(surfaceTemp, elevation float64) float64 {
	if h := m.p.AtmosphericHeight(); h > 0 && elevation >= h {
		return m.bbMean
	}
	if elevation <= 0 {
		return surfaceTemp
	}
	return surfaceTemp - elevation*m.LapseRate(surfaceTemp)
}

// Range is the (min, max, average) surface temperature in Kelvin of a
// location across one orbital year.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// RangeAt evaluates the winter- and summer-solstice temperatures for a
// latitude and elevation and returns the resulting annual range.
func (m *TemperatureModel) RangeAt(lat, elevation float64) Range {
	winter := m.seasonTemperature(m.winterAnomaly, lat, elevation)
	summer := m.seasonTemperature(m.summerAnomaly, lat, elevation)
	lo, hi := winter, summer
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Min: lo, Max: hi, Average: (lo + hi) / 2}
}

// At interpolates the temperature for a proportion of the year in [0, 1),
// where 0 is the winter solstice and 0.5 the summer solstice.
func (m *TemperatureModel) At(lat, elevation, proportionOfYear float64) float64 {
	winter := m.seasonTemperature(m.winterAnomaly, lat, elevation)
	summer := m.seasonTemperature(m.summerAnomaly, lat, elevation)
	f := 1 - math.Abs(2*proportionOfYear-1)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return winter + (summer-winter)*f
}

func (m *TemperatureModel) seasonTemperature(trueAnomaly, lat, elevation float64) float64 {
	seasonalLat := m.SeasonalLatitude(lat, trueAnomaly)
	surface := m.SurfaceTemperatureAt(trueAnomaly, seasonalLat)
	return m.TemperatureAtElevation(surface, elevation)
}
