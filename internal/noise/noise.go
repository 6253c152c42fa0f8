// Package noise provides seedable coherent noise fields evaluated at points
// on (or near) the unit sphere. A Field layers several octaves of simplex
// noise; a DetailField wraps an independent Perlin source for fine texture.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Fractal selects how octaves are folded together.
type Fractal int

const (
	// FractalFBM is standard fractional Brownian motion.
	FractalFBM Fractal = iota
	// FractalBillow folds each octave to its absolute value, giving puffy,
	// cloud-like features.
	FractalBillow
	// FractalRidged inverts the folded octaves, giving sharp ridge lines.
	FractalRidged
)

// Config holds the tunables of a fractal noise field.
type Config struct {
	// Frequency pre-multiplies input coordinates, decorrelating the noise
	// texture scale from the unit-sphere domain.
	Frequency   float64
	Octaves     int
	Lacunarity  float64
	Persistence float64
	Fractal     Fractal
	// Perturb offsets the sample point by a low-frequency gradient before
	// evaluation. Zero disables perturbation.
	Perturb float64
}

// DefaultConfig returns the field configuration used for terrain.
func DefaultConfig() Config {
	return Config{
		Frequency:   1,
		Octaves:     5,
		Lacunarity:  2,
		Persistence: 0.5,
		Fractal:     FractalFBM,
	}
}

// Field is a deterministic fractal noise field. It is safe for concurrent
// use: the underlying permutation tables are built once at construction and
// never written afterwards.
type Field struct {
	cfg  Config
	src  opensimplex.Noise
	warp opensimplex.Noise
}

// NewField constructs a Field from a seed and configuration. The same seed
// and configuration always produce an identical field.
func NewField(seed int64, cfg Config) *Field {
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = 1
	}
	if cfg.Lacunarity == 0 {
		cfg.Lacunarity = 2
	}
	if cfg.Persistence == 0 {
		cfg.Persistence = 0.5
	}
	f := &Field{cfg: cfg, src: opensimplex.New(seed)}
	if cfg.Perturb != 0 {
		f.warp = opensimplex.New(seed ^ 0x5DEECE66D)
	}
	return f
}

// Sample evaluates the field at (x, y, z), returning a value in
// approximately [-1, 1]. It is a pure function of the seed and coordinates.
func (f *Field) Sample(x, y, z float64) float64 {
	x *= f.cfg.Frequency
	y *= f.cfg.Frequency
	z *= f.cfg.Frequency

	if f.warp != nil {
		x += f.cfg.Perturb * f.warp.Eval3(x, y, z)
		y += f.cfg.Perturb * f.warp.Eval3(y, z, x)
		z += f.cfg.Perturb * f.warp.Eval3(z, x, y)
	}

	var sum, totalAmp float64
	amp := 1.0
	freq := 1.0
	for o := 0; o < f.cfg.Octaves; o++ {
		n := f.src.Eval3(x*freq, y*freq, z*freq)
		switch f.cfg.Fractal {
		case FractalBillow:
			n = 2*math.Abs(n) - 1
		case FractalRidged:
			n = 1 - 2*math.Abs(n)
		}
		sum += n * amp
		totalAmp += amp
		amp *= f.cfg.Persistence
		freq *= f.cfg.Lacunarity
	}
	return sum / totalAmp
}

// SampleUnit evaluates the field and rescales the result into [0, 1].
func (f *Field) SampleUnit(x, y, z float64) float64 {
	return (f.Sample(x, y, z) + 1) / 2
}

// DetailField is an independent Perlin noise source used where a second,
// uncorrelated texture term is needed (fine precipitation detail, resource
// richness).
type DetailField struct {
	src *perlin.Perlin
}

// NewDetailField constructs a DetailField from a seed.
func NewDetailField(seed int64) *DetailField {
	// alpha=2, beta=2, n=3 gives smooth terrain-like noise.
	return &DetailField{src: perlin.NewPerlin(2, 2, 3, seed)}
}

// Sample returns Perlin noise at (x, y, z) in approximately [-1, 1].
func (d *DetailField) Sample(x, y, z float64) float64 {
	return d.src.Noise3D(x, y, z)
}

// SampleUnit returns Perlin noise rescaled into [0, 1].
func (d *DetailField) SampleUnit(x, y, z float64) float64 {
	v := (d.src.Noise3D(x, y, z) + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
