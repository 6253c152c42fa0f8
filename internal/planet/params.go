package planet

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"planetgen/internal/geom"
)

// Params is the mutable half of planet construction. Fill it by hand, load
// it from YAML, or let Generate produce one, then call Build to obtain the
// immutable Planet.
type Params struct {
	Name string `yaml:"name" json:"name"`
	Kind Kind   `yaml:"kind" json:"kind"`

	Radius           float64 `yaml:"radius" json:"radius"` // m
	Mass             float64 `yaml:"mass" json:"mass"`     // kg
	RotationalPeriod float64 `yaml:"rotational_period" json:"rotationalPeriod"`
	AxialTilt        float64 `yaml:"axial_tilt" json:"axialTilt"`
	AxialPrecession  float64 `yaml:"axial_precession" json:"axialPrecession"`
	AngleOfRotation  float64 `yaml:"angle_of_rotation" json:"angleOfRotation"`
	Albedo           float64 `yaml:"albedo" json:"albedo"`
	FlatSurface      bool    `yaml:"flat_surface" json:"flatSurface"`

	// NormalizedSeaLevel is the sea level as a fraction of max elevation in
	// [-1, 1]. The absolute sea level in meters is derived at build time.
	NormalizedSeaLevel float64 `yaml:"normalized_sea_level" json:"normalizedSeaLevel"`

	Seeds       Seeds       `yaml:"seeds" json:"seeds"`
	Atmosphere  *Atmosphere `yaml:"atmosphere,omitempty" json:"atmosphere,omitempty"`
	Orbit       *Orbit      `yaml:"orbit,omitempty" json:"orbit,omitempty"`
	Hydrosphere Hydrosphere `yaml:"hydrosphere" json:"hydrosphere"`
}

// Validate rejects parameter sets the engine cannot work with.
func (p Params) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("unknown planet kind %q", p.Kind)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", p.Radius)
	}
	if p.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", p.Mass)
	}
	if p.RotationalPeriod <= 0 {
		return fmt.Errorf("rotational period must be positive, got %g", p.RotationalPeriod)
	}
	if p.Albedo < 0 || p.Albedo > 1 {
		return fmt.Errorf("albedo must be in [0, 1], got %g", p.Albedo)
	}
	if p.NormalizedSeaLevel < -1 || p.NormalizedSeaLevel > 1 {
		return fmt.Errorf("normalized sea level must be in [-1, 1], got %g", p.NormalizedSeaLevel)
	}
	if o := p.Orbit; o != nil {
		if o.SemiMajorAxis <= 0 {
			return fmt.Errorf("orbit semi-major axis must be positive, got %g", o.SemiMajorAxis)
		}
		if o.Eccentricity < 0 || o.Eccentricity >= 1 {
			return fmt.Errorf("orbit eccentricity must be in [0, 1), got %g", o.Eccentricity)
		}
		if o.StarLuminosity <= 0 {
			return fmt.Errorf("star luminosity must be positive, got %g", o.StarLuminosity)
		}
	}
	if a := p.Atmosphere; a != nil {
		if a.Mass < 0 || a.ScaleHeight < 0 || a.Height < 0 {
			return fmt.Errorf("atmosphere mass, scale height and height must be non-negative")
		}
		if a.AveragePrecipitation < 0 || a.MaxPrecipitation < 0 {
			return fmt.Errorf("precipitation budgets must be non-negative")
		}
		if a.MaxPrecipitation > 0 && a.MaxPrecipitation < a.AveragePrecipitation {
			return fmt.Errorf("max precipitation %g below average %g",
				a.MaxPrecipitation, a.AveragePrecipitation)
		}
		if a.SnowToRainRatio < 0 {
			return fmt.Errorf("snow-to-rain ratio must be non-negative, got %g", a.SnowToRainRatio)
		}
	}
	return nil
}

// Build validates the parameters and produces the immutable Planet with all
// derived quantities computed.
func (p Params) Build() (*Planet, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planet params: %w", err)
	}

	flat := p.FlatSurface || p.Kind.Profile().FlatSurface
	gravity := surfaceGravityFor(p.Mass, p.Radius)

	maxElev := 0.0
	if !flat {
		maxElev = maxElevationFor(gravity, p.Seeds.TerrainA)
	}

	tilt := p.AxialTilt
	if o := p.Orbit; o != nil && tilt == 0 && o.Inclination != 0 {
		// Axial tilt defaults to the orbit inclination when unspecified.
		tilt = o.Inclination
	}

	pl := &Planet{
		ID:               uuid.New(),
		Name:             p.Name,
		Kind:             p.Kind,
		Radius:           p.Radius,
		Mass:             p.Mass,
		RotationalPeriod: p.RotationalPeriod,
		AxialTilt:        tilt,
		AxialPrecession:  p.AxialPrecession,
		AngleOfRotation:  p.AngleOfRotation,
		Albedo:           p.Albedo,
		FlatSurface:      flat,
		Seeds:            p.Seeds,
		Atmosphere:       cloneAtmosphere(p.Atmosphere),
		Orbit:            cloneOrbit(p.Orbit),
		Hydrosphere:      p.Hydrosphere,

		SurfaceGravity:     gravity,
		MaxElevation:       maxElev,
		NormalizedSeaLevel: p.NormalizedSeaLevel,
		SeaLevel:           p.NormalizedSeaLevel * maxElev,

		surface: geom.NewSurface(p.Radius, p.AxialPrecession, p.AngleOfRotation),
	}
	return pl, nil
}

func cloneAtmosphere(a *Atmosphere) *Atmosphere {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func cloneOrbit(o *Orbit) *Orbit {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// LoadParams reads a planet definition from a YAML file.
func LoadParams(path string) (Params, error) {
	var p Params
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("reading planet file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parsing planet YAML: %w", err)
	}
	return p, nil
}

// Save writes the planet definition to a YAML file.
func (p Params) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding planet YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing planet file: %w", err)
	}
	return nil
}

// newRand returns a deterministic generator for the given seed. All
// planet-level randomness flows through here so that a fixed seed always
// reproduces the same planet.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// derivedSeed mixes a fixed salt into a seed so sibling noise fields stay
// uncorrelated.
func derivedSeed(seed int64, salt uint64) int64 {
	h := uint64(seed) ^ salt
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return int64(h)
}
