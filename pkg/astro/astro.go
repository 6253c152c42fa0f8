// Package astro provides small orbital and radiative helpers shared by the
// climate model and any driver that needs to place a planet in its year.
package astro

import "math"

const (
	// StefanBoltzmann is the Stefan-Boltzmann constant in W/(m^2 K^4).
	StefanBoltzmann = 5.670374419e-8
	// SolarLuminosity is the luminosity of the Sun in watts.
	SolarLuminosity = 3.828e26
	// AU is one astronomical unit in meters.
	AU = 1.495978707e11
)

// BlackbodyTemperature returns the equilibrium temperature in Kelvin of a
// body at the given distance (meters) from a star of the given luminosity
// (watts), ignoring any atmosphere. Albedo is the Bond albedo in [0, 1].
func BlackbodyTemperature(luminosity, distance, albedo float64) float64 {
	if luminosity <= 0 || distance <= 0 {
		return 0
	}
	flux := luminosity * (1 - albedo) / (16 * math.Pi * StefanBoltzmann * distance * distance)
	return math.Pow(flux, 0.25)
}

// OrbitalDistance returns the star-planet distance in meters at the given
// true anomaly for an ellipse with the given semi-major axis and eccentricity.
func OrbitalDistance(semiMajorAxis, eccentricity, trueAnomaly float64) float64 {
	return semiMajorAxis * (1 - eccentricity*eccentricity) /
		(1 + eccentricity*math.Cos(trueAnomaly))
}

// PeriapsisDistance returns the closest approach distance of the orbit.
func PeriapsisDistance(semiMajorAxis, eccentricity float64) float64 {
	return semiMajorAxis * (1 - eccentricity)
}

// ApoapsisDistance returns the farthest distance of the orbit.
func ApoapsisDistance(semiMajorAxis, eccentricity float64) float64 {
	return semiMajorAxis * (1 + eccentricity)
}

// WinterSolsticeAnomaly returns the true anomaly of the northern-hemisphere
// winter solstice for a planet whose rotation axis has the given precession.
func WinterSolsticeAnomaly(axialPrecession float64) float64 {
	return WrapAngle(3*math.Pi/2 - axialPrecession)
}

// SummerSolsticeAnomaly returns the true anomaly of the northern-hemisphere
// summer solstice for a planet whose rotation axis has the given precession.
func SummerSolsticeAnomaly(axialPrecession float64) float64 {
	return WrapAngle(math.Pi/2 - axialPrecession)
}

// SolarDeclination returns the latitude (radians) at which the star is
// directly overhead at the given true anomaly. It peaks at +axialTilt at the
// summer solstice and bottoms out at -axialTilt at the winter solstice.
func SolarDeclination(axialTilt, trueAnomaly, axialPrecession float64) float64 {
	return axialTilt * math.Cos(trueAnomaly-SummerSolsticeAnomaly(axialPrecession))
}

// WrapAngle normalizes an angle to [0, 2*pi).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
