package surfacemap

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"planetgen/internal/climate"
	"planetgen/internal/planet"
	"planetgen/internal/terrain"
	"planetgen/pkg/astro"
)

// Builder rasterizes one planet into a SurfaceMaps bundle. The passes run
// in a fixed order because later grids read earlier ones: elevation feeds
// temperature, both feed precipitation, and classification reads all three.
// Within a pass rows are processed in parallel; every cell is written by
// exactly one worker, so results do not depend on the worker count.
type Builder struct {
	planet  *planet.Planet
	cfg     Config
	frame   Frame
	terrain *terrain.Model
	temps   *climate.TemperatureModel
	precip  *climate.PrecipitationModel
}

// NewBuilder validates the configuration and constructs the per-planet
// models the passes sample from.
func NewBuilder(p *planet.Planet, cfg Config) (*Builder, error) {
	if err := cfg.Validate(p); err != nil {
		return nil, err
	}
	b := &Builder{
		planet:  p,
		cfg:     cfg,
		frame:   cfg.Frame(),
		terrain: terrain.New(p),
		temps:   climate.NewTemperatureModel(p, climate.DefaultTuning()),
	}
	if cfg.Seasons > 0 {
		pm, err := climate.NewPrecipitationModel(p, climate.DefaultTuning(), nil)
		if err != nil {
			return nil, err
		}
		b.precip = pm
	}
	return b, nil
}

// Build generates the complete bundle for the given planet and
// configuration.
func Build(p *planet.Planet, cfg Config) (*SurfaceMaps, error) {
	b, err := NewBuilder(p, cfg)
	if err != nil {
		return nil, err
	}
	return b.Run()
}

// Run executes every pass and returns the finished bundle.
func (b *Builder) Run() (*SurfaceMaps, error) {
	m, err := b.allocate()
	if err != nil {
		return nil, err
	}
	b.elevationPass(m)
	b.temperaturePass(m)
	if err := b.precipitationPasses(m); err != nil {
		return nil, err
	}
	b.coveragePass(m)
	b.aggregatePass(m)
	b.classifyPass(m)
	return m, nil
}

func (b *Builder) allocate() (*SurfaceMaps, error) {
	w, h := b.cfg.Width, b.cfg.Height
	m := &SurfaceMaps{
		Version:    FormatVersion,
		PlanetID:   b.planet.ID,
		PlanetName: b.planet.Name,
		Projection: b.frame.Projection,
		Region:     b.frame.Region,
		Width:      w,
		Height:     h,
		Seasons:    b.cfg.Seasons,
	}
	var err error
	alloc := func(g **Grid[float64]) {
		if err == nil {
			*g, err = NewGrid[float64](w, h)
		}
	}
	alloc(&m.Elevation)
	alloc(&m.Resources)
	alloc(&m.AnnualPrecipitation)
	alloc(&m.AnnualSnowfall)
	alloc(&m.Humidity)
	if err == nil {
		m.Temperature, err = NewGrid[climate.Range](w, h)
	}
	if err == nil {
		m.SeaIce, err = NewGrid[Coverage](w, h)
	}
	if err == nil {
		m.SnowCover, err = NewGrid[Coverage](w, h)
	}
	if err == nil {
		m.Climate, err = NewGrid[climate.ClimateZone](w, h)
	}
	if err == nil {
		m.Ecology, err = NewGrid[climate.EcologyZone](w, h)
	}
	if err == nil {
		m.Biome, err = NewGrid[climate.Biome](w, h)
	}
	for i := 0; i < b.cfg.Seasons && err == nil; i++ {
		var p, s *Grid[float64]
		p, err = NewGrid[float64](w, h)
		if err == nil {
			s, err = NewGrid[float64](w, h)
		}
		m.SeasonPrecipitation = append(m.SeasonPrecipitation, p)
		m.SeasonSnowfall = append(m.SeasonSnowfall, s)
	}
	if err != nil {
		return nil, fmt.Errorf("allocating %dx%d surface maps: %w", w, h, err)
	}
	return m, nil
}

// forEachRow dispatches rows 0..h-1 to a pool of workers and blocks until
// all finish.
func (b *Builder) forEachRow(fn func(y int)) {
	workers := b.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > b.cfg.Height {
		workers = b.cfg.Height
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range jobs {
				fn(y)
			}
		}()
	}
	for y := 0; y < b.cfg.Height; y++ {
		jobs <- y
	}
	close(jobs)
	wg.Wait()
}

func (b *Builder) elevationPass(m *SurfaceMaps) {
	surface := b.planet.Surface()
	b.forEachRow(func(y int) {
		lat := b.frame.LatForRow(y, b.cfg.Height)
		for x := 0; x < b.cfg.Width; x++ {
			lon := b.frame.LonForCol(x, b.cfg.Width)
			v := surface.LatLonToVector(lat, lon)
			m.Elevation.Set(x, y, b.terrain.ElevationAt(lat, lon))
			m.Resources.Set(x, y, b.terrain.ResourceRichnessAt(v))
		}
	})
}

func (b *Builder) temperaturePass(m *SurfaceMaps) {
	b.forEachRow(func(y int) {
		lat := b.frame.LatForRow(y, b.cfg.Height)
		for x := 0; x < b.cfg.Width; x++ {
			m.Temperature.Set(x, y, b.temps.RangeAt(lat, m.Elevation.At(x, y)))
		}
	})
}

func (b *Builder) precipitationPasses(m *SurfaceMaps) error {
	if b.cfg.Seasons == 0 {
		return nil
	}
	surface := b.planet.Surface()
	winter, _ := b.planet.SolsticeAnomalies()
	seasonLength := 1 / float64(b.cfg.Seasons)
	for i := 0; i < b.cfg.Seasons; i++ {
		proportion := float64(i) * seasonLength
		anomaly := astro.WrapAngle(winter + proportion*2*math.Pi)
		precipGrid := m.SeasonPrecipitation[i]
		snowGrid := m.SeasonSnowfall[i]
		b.forEachRow(func(y int) {
			lat := b.frame.LatForRow(y, b.cfg.Height)
			for x := 0; x < b.cfg.Width; x++ {
				lon := b.frame.LonForCol(x, b.cfg.Width)
				v := surface.LatLonToVector(lat, lon)
				seasonalLat := b.temps.SeasonalLatitude(lat, anomaly)
				temp := b.temps.At(lat, m.Elevation.At(x, y), proportion)
				precip, snow := b.precip.At(v, seasonalLat, temp, seasonLength)
				precipGrid.Set(x, y, precip)
				snowGrid.Set(x, y, snow)
				humidity := b.precip.RelativeHumidityAt(v, seasonalLat, temp)
				idx := m.Humidity.Index(x, y)
				m.Humidity.Cells[idx] += humidity * seasonLength
			}
		})
	}
	return nil
}

// winterSeason and summerSeason index the season grids sampled for
// coverage: season 0 starts at the winter solstice and season N/2 at the
// summer one.
func (b *Builder) winterSeason() int { return 0 }
func (b *Builder) summerSeason() int { return b.cfg.Seasons / 2 }

func (b *Builder) coveragePass(m *SurfaceMaps) {
	hydro := b.planet.Hydrosphere.Present
	b.forEachRow(func(y int) {
		for x := 0; x < b.cfg.Width; x++ {
			elev := m.Elevation.At(x, y)
			tr := m.Temperature.At(x, y)
			if hydro && elev <= 0 {
				m.SeaIce.Set(x, y, Coverage{
					Winter: tr.Min <= planet.FreezingPoint,
					Summer: tr.Max <= planet.FreezingPoint,
				})
				continue
			}
			if b.cfg.Seasons == 0 {
				continue
			}
			winterSnow := m.SeasonSnowfall[b.winterSeason()].At(x, y)
			summerSnow := m.SeasonSnowfall[b.summerSeason()].At(x, y)
			m.SnowCover.Set(x, y, Coverage{
				Winter: winterSnow > 0 && tr.Min <= planet.FreezingPoint,
				Summer: summerSnow > 0 && tr.Max <= planet.FreezingPoint,
			})
		}
	})
}

func (b *Builder) aggregatePass(m *SurfaceMaps) {
	hydro := b.planet.Hydrosphere.Present
	var totalArea, elevSum, precipSum, landArea float64
	for y := 0; y < b.cfg.Height; y++ {
		area := b.frame.CellArea(y, b.cfg.Width, b.cfg.Height, b.planet.Radius)
		for x := 0; x < b.cfg.Width; x++ {
			var annualPrecip, annualSnow float64
			for i := 0; i < b.cfg.Seasons; i++ {
				annualPrecip += m.SeasonPrecipitation[i].At(x, y)
				annualSnow += m.SeasonSnowfall[i].At(x, y)
			}
			m.AnnualPrecipitation.Set(x, y, annualPrecip)
			m.AnnualSnowfall.Set(x, y, annualSnow)

			totalArea += area
			elevSum += m.Elevation.At(x, y) * area
			precipSum += annualPrecip * area
			if !hydro || m.Elevation.At(x, y) > 0 {
				landArea += area
			}
		}
	}
	if totalArea > 0 {
		m.AverageElevation = elevSum / totalArea
		m.TotalPrecipitation = precipSum / totalArea
		m.LandFraction = landArea / totalArea
	}
}

func (b *Builder) classifyPass(m *SurfaceMaps) {
	hydro := b.planet.Hydrosphere.Present
	b.forEachRow(func(y int) {
		lat := b.frame.LatForRow(y, b.cfg.Height)
		for x := 0; x < b.cfg.Width; x++ {
			c := climate.Classify(
				m.Temperature.At(x, y),
				m.AnnualPrecipitation.At(x, y),
				m.Elevation.At(x, y),
				lat,
				hydro,
			)
			m.Climate.Set(x, y, c.Climate)
			m.Ecology.Set(x, y, c.Ecology)
			m.Biome.Set(x, y, c.Biome)
		}
	})
}
