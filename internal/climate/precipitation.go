package climate

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"planetgen/internal/noise"
	"planetgen/internal/planet"
)

// Noise input scales for the two precipitation texture terms.
const (
	precipSmoothFrequency = 10
	precipDetailFrequency = 1000
)

// HadleyCache memoizes the Hadley circulation curve by rounded latitude. The
// curve depends on latitude alone, so entries are valid for any planet; a
// racing write merely stores the same deterministic value again.
type HadleyCache struct {
	mu     sync.RWMutex
	offset float64
	vals   map[int64]float64
}

// NewHadleyCache creates a cache for the given polar dead-zone offset.
func NewHadleyCache(offset float64) *HadleyCache {
	return &HadleyCache{offset: offset, vals: make(map[int64]float64)}
}

// Value returns the Hadley curve value for an absolute latitude in radians.
func (c *HadleyCache) Value(absLat float64) float64 {
	key := int64(math.Round(absLat * 1000))
	c.mu.RLock()
	v, ok := c.vals[key]
	c.mu.RUnlock()
	if ok {
		return v
	}
	v = hadleyCurve(float64(key)/1000, c.offset)
	c.mu.Lock()
	c.vals[key] = v
	c.mu.Unlock()
	return v
}

// hadleyCurve is the empirical humidity-by-latitude curve: wet equator, dry
// subtropics, a wet temperate band, dry poles. The reciprocal term is the
// inter-tropical spike; offset keeps it finite at the equator.
func hadleyCurve(absLat, offset float64) float64 {
	base := math.Cos(1.25*math.Pi*absLat + math.Pi)
	spike := math.Max(0, 1/(1.5*(absLat+offset))-2.5)
	return base + spike
}

// PrecipitationModel derives precipitation and snowfall per coordinate and
// season. It is immutable after construction and safe for concurrent use.
type PrecipitationModel struct {
	p      *planet.Planet
	tuning Tuning
	smooth *noise.Field
	detail *noise.DetailField
	hadley *HadleyCache
}

// NewPrecipitationModel builds the precipitation model. The planet must have
// an atmosphere: precipitation without one is a configuration error. A nil
// cache gets a private one.
func NewPrecipitationModel(p *planet.Planet, tuning Tuning, cache *HadleyCache) (*PrecipitationModel, error) {
	if p.Atmosphere == nil {
		return nil, fmt.Errorf("planet %s has no atmosphere: precipitation requires one", p.Name)
	}
	if cache == nil {
		cache = NewHadleyCache(tuning.HadleyPolarOffset)
	}
	smoothCfg := noise.DefaultConfig()
	smoothCfg.Octaves = 3
	return &PrecipitationModel{
		p:      p,
		tuning: tuning,
		smooth: noise.NewField(p.Seeds.Precipitation, smoothCfg),
		detail: noise.NewDetailField(p.Seeds.Precipitation),
		hadley: cache,
	}, nil
}

// RelativeHumidityAt returns the unitless humidity term at a surface
// direction for a seasonal latitude and temperature. Always >= 0.
func (m *PrecipitationModel) RelativeHumidityAt(v mgl64.Vec3, seasonalLat, temperature float64) float64 {
	r1 := 0.3 + 0.7*m.smooth.SampleUnit(
		v.X()*precipSmoothFrequency, v.Y()*precipSmoothFrequency, v.Z()*precipSmoothFrequency)
	r2 := 0.9 + 0.1*m.detail.SampleUnit(
		v.X()*precipDetailFrequency, v.Y()*precipDetailFrequency, v.Z()*precipDetailFrequency)

	absLat := math.Abs(seasonalLat)
	humidity := math.Max(0, r1*r2+m.hadley.Value(absLat))

	// Too cold to hold moisture: ramp humidity to zero over the cold range
	// below freezing.
	coldFloor := planet.FreezingPoint - m.tuning.ColdHumidityRange
	switch {
	case temperature <= coldFloor:
		return 0
	case temperature < planet.FreezingPoint:
		humidity *= (temperature - coldFloor) / m.tuning.ColdHumidityRange
	}

	// Convergence boost near the equator.
	if absLat < m.tuning.ITCZLatitude {
		humidity *= 1 + m.tuning.ITCZBoost*(1-absLat/m.tuning.ITCZLatitude)
	}
	return humidity
}

// At returns the precipitation and snowfall (mm) for one season at a surface
// direction. proportionOfYear is the season's share of the orbital year,
// 1/N for N equal seasons. Snow falls only at or below freezing.
func (m *PrecipitationModel) At(v mgl64.Vec3, seasonalLat, temperature, proportionOfYear float64) (precipitation, snow float64) {
	a := m.p.Atmosphere
	humidity := m.RelativeHumidityAt(v, seasonalLat, temperature)

	precipitation = a.AveragePrecipitation * proportionOfYear * humidity
	if a.MaxPrecipitation > 0 {
		if limit := a.MaxPrecipitation * proportionOfYear; precipitation > limit {
			precipitation = limit
		}
	}
	if temperature <= planet.FreezingPoint {
		snow = precipitation * a.SnowToRainRatio
	}
	return precipitation, snow
}
