package surfacemap

import (
	"fmt"

	"github.com/google/uuid"

	"planetgen/internal/climate"
	"planetgen/internal/planet"
)

// FormatVersion is the persisted schema version of a SurfaceMaps bundle.
const FormatVersion = 1

// Coverage marks whether a cell is covered (by sea ice or snow) at the
// winter and summer extremes of the year.
type Coverage struct {
	Winter bool `json:"winter"`
	Summer bool `json:"summer"`
}

// Config controls one surface-map generation run.
type Config struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Projection Projection `json:"projection"`
	// Region bounds the mapped surface; the zero value maps the full planet.
	Region Region `json:"region"`
	// Seasons is the number of equal-length seasons the precipitation model
	// is stepped across. Zero skips the precipitation passes entirely,
	// which is the only valid choice for a planet without an atmosphere.
	Seasons int `json:"seasons"`
	// Workers bounds the worker pool; zero means one worker per CPU.
	Workers int `json:"-"`
}

// DefaultConfig returns the standard full-planet mapping configuration.
func DefaultConfig() Config {
	return Config{
		Width:      360,
		Height:     180,
		Projection: Equirectangular,
		Seasons:    4,
	}
}

// Frame returns the projection frame the configuration maps, with a zero
// region widened to the full planet.
func (c Config) Frame() Frame {
	return NewFrame(c.Projection, c.Region)
}

// Validate rejects configurations the rasterizer cannot run, before any
// computation begins.
func (c Config) Validate(p *planet.Planet) error {
	if err := c.Frame().Validate(c.Width, c.Height); err != nil {
		return err
	}
	if c.Seasons < 0 {
		return fmt.Errorf("season count must be non-negative, got %d", c.Seasons)
	}
	if c.Seasons > 0 && p.Atmosphere == nil {
		return fmt.Errorf("planet %s has no atmosphere: cannot map %d precipitation seasons",
			p.Name, c.Seasons)
	}
	return nil
}

// SurfaceMaps is the immutable bundle one generation run produces. Grids
// share dimensions and index order; per-season slices are indexed so that
// season i covers proportion-of-year i/N to (i+1)/N, starting at the winter
// solstice.
type SurfaceMaps struct {
	Version    int        `json:"version"`
	PlanetID   uuid.UUID  `json:"planetId"`
	PlanetName string     `json:"planetName"`
	Projection Projection `json:"projection"`
	Region     Region     `json:"region"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Seasons    int        `json:"seasons"`

	Elevation   *Grid[float64]       `json:"elevation"`   // meters, sea-level relative
	Temperature *Grid[climate.Range] `json:"temperature"` // Kelvin
	Resources   *Grid[float64]       `json:"resources"`   // richness in [0, 1]

	SeasonPrecipitation []*Grid[float64] `json:"seasonPrecipitation"` // mm per season
	SeasonSnowfall      []*Grid[float64] `json:"seasonSnowfall"`      // mm per season

	AnnualPrecipitation *Grid[float64] `json:"annualPrecipitation"` // mm per year
	AnnualSnowfall      *Grid[float64] `json:"annualSnowfall"`      // mm per year
	Humidity            *Grid[float64] `json:"humidity"`            // mean relative humidity

	SeaIce    *Grid[Coverage] `json:"seaIce"`
	SnowCover *Grid[Coverage] `json:"snowCover"`

	Climate *Grid[climate.ClimateZone] `json:"climate"`
	Ecology *Grid[climate.EcologyZone] `json:"ecology"`
	Biome   *Grid[climate.Biome]       `json:"biome"`

	AverageElevation   float64 `json:"averageElevation"`   // meters
	TotalPrecipitation float64 `json:"totalPrecipitation"` // planet mean, mm per year
	LandFraction       float64 `json:"landFraction"`
}

// Frame returns the projection frame the bundle's grids were rasterized in.
func (m *SurfaceMaps) Frame() Frame {
	return Frame{Projection: m.Projection, Region: m.Region}
}

// checkComplete verifies that every grid exists with consistent dimensions,
// used after deserialization: a bundle missing a grid is corrupt.
func (m *SurfaceMaps) checkComplete() error {
	if m.Version != FormatVersion {
		return fmt.Errorf("unsupported surface map version %d (want %d)", m.Version, FormatVersion)
	}
	if err := m.Frame().Validate(m.Width, m.Height); err != nil {
		return err
	}
	for _, c := range []struct {
		name string
		ok   bool
	}{
		{"elevation", gridFits(m.Elevation, m.Width, m.Height)},
		{"temperature", gridFits(m.Temperature, m.Width, m.Height)},
		{"resources", gridFits(m.Resources, m.Width, m.Height)},
		{"annualPrecipitation", gridFits(m.AnnualPrecipitation, m.Width, m.Height)},
		{"annualSnowfall", gridFits(m.AnnualSnowfall, m.Width, m.Height)},
		{"humidity", gridFits(m.Humidity, m.Width, m.Height)},
		{"seaIce", gridFits(m.SeaIce, m.Width, m.Height)},
		{"snowCover", gridFits(m.SnowCover, m.Width, m.Height)},
		{"climate", gridFits(m.Climate, m.Width, m.Height)},
		{"ecology", gridFits(m.Ecology, m.Width, m.Height)},
		{"biome", gridFits(m.Biome, m.Width, m.Height)},
	} {
		if !c.ok {
			return fmt.Errorf("surface map bundle: grid %q missing or malformed", c.name)
		}
	}
	if len(m.SeasonPrecipitation) != m.Seasons || len(m.SeasonSnowfall) != m.Seasons {
		return fmt.Errorf("surface map bundle: have %d/%d season grids, want %d",
			len(m.SeasonPrecipitation), len(m.SeasonSnowfall), m.Seasons)
	}
	for i := 0; i < m.Seasons; i++ {
		if !gridFits(m.SeasonPrecipitation[i], m.Width, m.Height) || !gridFits(m.SeasonSnowfall[i], m.Width, m.Height) {
			return fmt.Errorf("surface map bundle: season %d grids missing or malformed", i)
		}
	}
	return nil
}

// gridFits reports whether g is well formed and matches the bundle dimensions.
// Any grid sized differently from its bundle would break cross-grid indexing.
func gridFits[T any](g *Grid[T], w, h int) bool {
	return g.Valid() && g.Width == w && g.Height == h
}
