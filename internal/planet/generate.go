package planet

import (
	"fmt"
	"math"
)

// Salts for deriving the per-field seeds from the master generation seed.
const (
	saltTerrainA = 0x7e11a5_01
	saltTerrainB = 0x7e11a5_02
	saltTerrainC = 0x7e11a5_03
	saltPrecip   = 0x7e11a5_04
	saltResource = 0x7e11a5_05
)

// Generate produces a random but physically plausible planet of the given
// kind from a single master seed. The same seed and kind always yield the
// same planet.
func Generate(seed int64, kind Kind) (*Planet, error) {
	params, err := GenerateParams(seed, kind)
	if err != nil {
		return nil, err
	}
	return params.Build()
}

// GenerateParams rolls the random parameter set Generate builds from,
// exposed separately so drivers can persist or tweak it before building.
func GenerateParams(seed int64, kind Kind) (Params, error) {
	if !kind.Valid() {
		return Params{}, fmt.Errorf("unknown planet kind %q", kind)
	}
	profile := kind.Profile()
	rng := newRand(seed)

	// Radius range depends on the kind: gas giants are an order of
	// magnitude larger than rocky bodies, comets far smaller.
	var radius float64
	switch kind {
	case KindGasGiant:
		radius = 2.0e7 + rng.Float64()*6.0e7
	case KindComet:
		radius = 1e3 + rng.Float64()*3e4
	default:
		radius = 2.0e6 + rng.Float64()*5.5e6
	}

	density := profile.DensityMin + rng.Float64()*(profile.DensityMax-profile.DensityMin)
	mass := density * 4 / 3 * math.Pi * radius * radius * radius

	p := Params{
		Name:             fmt.Sprintf("%s-%04d", kind, seed%10000),
		Kind:             kind,
		Radius:           radius,
		Mass:             mass,
		RotationalPeriod: 20000 + rng.Float64()*160000,
		AxialTilt:        rng.Float64() * 0.6,
		AxialPrecession:  rng.Float64() * 2 * math.Pi,
		AngleOfRotation:  rng.Float64() * 2 * math.Pi,
		Albedo:           0.1 + rng.Float64()*0.5,
		Seeds: Seeds{
			TerrainA:      derivedSeed(seed, saltTerrainA),
			TerrainB:      derivedSeed(seed, saltTerrainB),
			TerrainC:      derivedSeed(seed, saltTerrainC),
			Precipitation: derivedSeed(seed, saltPrecip),
			Resource:      derivedSeed(seed, saltResource),
		},
	}

	// Orbit in the rough habitable neighborhood of a sun-like star.
	semiMajor := (0.4 + rng.Float64()*2.2) * 1.496e11
	p.Orbit = &Orbit{
		SemiMajorAxis:  semiMajor,
		Eccentricity:   rng.Float64() * 0.2,
		Inclination:    rng.Float64() * 0.1,
		StarLuminosity: 3.828e26 * (0.5 + rng.Float64()),
	}

	if kind == KindRocky || kind == KindIcy {
		p.NormalizedSeaLevel = -0.2 + rng.Float64()*0.4
		p.Hydrosphere = Hydrosphere{Present: rng.Float64() < 0.7}
		p.Atmosphere = &Atmosphere{
			Mass:                 1e18 * (0.5 + rng.Float64()*9.5),
			ScaleHeight:          6000 + rng.Float64()*6000,
			Height:               60000 + rng.Float64()*60000,
			GreenhouseFactor:     1 + rng.Float64()*0.2,
			AveragePrecipitation: 500 + rng.Float64()*1500,
			SnowToRainRatio:      5 + rng.Float64()*10,
			WaterVaporRatio:      rng.Float64() * 0.01,
		}
		p.Atmosphere.MaxPrecipitation = p.Atmosphere.AveragePrecipitation * (4 + rng.Float64()*8)
	}

	return p, nil
}
