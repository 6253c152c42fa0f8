// Package render turns surface-map bundles into raster images: hypsometric
// elevation, hillshade, temperature and precipitation ramps, and biome
// colors. It reads finished bundles only and never touches the generators.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Flokey82/genbiome"

	"planetgen/internal/climate"
	"planetgen/internal/planet"
	"planetgen/internal/surfacemap"
)

// Elevation renders sea depth and hypsometric land tints, normalized to the
// bundle's own elevation extremes.
func Elevation(m *surfacemap.SurfaceMaps) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	low, high := minMax(m.Elevation.Cells)
	for i, elev := range m.Elevation.Cells {
		var c color.RGBA
		if elev <= 0 {
			t := 1.0
			if low < 0 {
				t = 1 - elev/low
			}
			c = seaRamp.at(t)
		} else {
			t := 0.0
			if high > 0 {
				t = elev / high
			}
			c = landRamp.at(t)
		}
		setPixel(img, i, c)
	}
	return img
}

// Hillshade renders relief lit from the northwest. Shading works on the
// grid's own elevation scale, so it is usable for any planet size.
func Hillshade(m *surfacemap.SurfaceMaps) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	_, high := minMax(m.Elevation.Cells)
	if high <= 0 {
		high = 1
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			g := uint8(255 * shadeAt(m, x, y, high))
			setPixel(img, m.Elevation.Index(x, y), color.RGBA{g, g, g, 0xff})
		}
	}
	return img
}

// shadeAt returns a light factor in [0, 1] from the normalized elevation
// gradient toward the southeast.
func shadeAt(m *surfacemap.SurfaceMaps, x, y int, high float64) float64 {
	sample := func(sx, sy int) float64 {
		if sx < 0 {
			sx = 0
		} else if sx >= m.Width {
			sx = m.Width - 1
		}
		if sy < 0 {
			sy = 0
		} else if sy >= m.Height {
			sy = m.Height - 1
		}
		e := m.Elevation.At(sx, sy)
		if e < 0 {
			e = 0
		}
		return e / high
	}
	dzdx := sample(x+1, y) - sample(x-1, y)
	dzdy := sample(x, y+1) - sample(x, y-1)
	shade := 0.5 - 2*(dzdx+dzdy)
	return math.Max(0, math.Min(1, shade))
}

// Temperature renders mean annual surface temperature, normalized across
// the bundle.
func Temperature(m *surfacemap.SurfaceMaps) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	low, high := math.Inf(1), math.Inf(-1)
	for _, tr := range m.Temperature.Cells {
		low = math.Min(low, tr.Average)
		high = math.Max(high, tr.Average)
	}
	span := high - low
	if span <= 0 {
		span = 1
	}
	for i, tr := range m.Temperature.Cells {
		setPixel(img, i, tempRamp.at((tr.Average-low)/span))
	}
	return img
}

// Precipitation renders one grid of precipitation values in millimeters,
// either a single season or the annual aggregate.
func Precipitation(g *surfacemap.Grid[float64]) (*image.RGBA, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("precipitation grid missing or malformed")
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	_, high := minMax(g.Cells)
	if high <= 0 {
		high = 1
	}
	for i, v := range g.Cells {
		setPixel(img, i, precipRamp.at(v/high))
	}
	return img, nil
}

// biomePalette maps each biome to its map color.
var biomePalette = map[climate.Biome]color.RGBA{
	climate.BiomeOcean:               {0x16, 0x3c, 0x64, 0xff},
	climate.BiomeSeaIce:              {0xd8, 0xe8, 0xf2, 0xff},
	climate.BiomeIceSheet:            {0xf2, 0xf6, 0xfa, 0xff},
	climate.BiomePolarDesert:         {0xc9, 0xc9, 0xc0, 0xff},
	climate.BiomeColdDesert:          {0xb5, 0xa8, 0x85, 0xff},
	climate.BiomeTundra:              {0x9d, 0xa8, 0x7c, 0xff},
	climate.BiomeTaiga:               {0x3f, 0x6b, 0x45, 0xff},
	climate.BiomeDesert:              {0xe0, 0xc0, 0x70, 0xff},
	climate.BiomeSteppe:              {0xc2, 0xb2, 0x5f, 0xff},
	climate.BiomeShrubland:           {0xa8, 0x9a, 0x50, 0xff},
	climate.BiomeTemperateForest:     {0x49, 0x7d, 0x3c, 0xff},
	climate.BiomeTemperateRainForest: {0x2f, 0x63, 0x3a, 0xff},
	climate.BiomeSavanna:             {0xb8, 0xa8, 0x3e, 0xff},
	climate.BiomeMonsoonForest:       {0x58, 0x86, 0x2e, 0xff},
	climate.BiomeRainForest:          {0x1f, 0x5c, 0x26, 0xff},
}

// Biomes renders the biome classification, shaded by hillshade so relief
// stays readable under the flat category colors.
func Biomes(m *surfacemap.SurfaceMaps) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	_, high := minMax(m.Elevation.Cells)
	if high <= 0 {
		high = 1
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := m.Biome.Index(x, y)
			c, ok := biomePalette[m.Biome.Cells[i]]
			if !ok {
				c = color.RGBA{0xff, 0x00, 0xff, 0xff}
			}
			f := 0.7 + 0.6*shadeAt(m, x, y, high)
			setPixel(img, i, scale(c, f))
		}
	}
	return img
}

// Whittaker renders land cells with the Whittaker diagram colors from mean
// annual temperature and precipitation, and ocean cells by depth. Relief
// drives the color intensity.
func Whittaker(m *surfacemap.SurfaceMaps) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	low, high := minMax(m.Elevation.Cells)
	if high <= 0 {
		high = 1
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := m.Elevation.Index(x, y)
			elev := m.Elevation.Cells[i]
			if elev <= 0 && m.Biome.Cells[i] == climate.BiomeOcean {
				t := 1.0
				if low < 0 {
					t = 1 - elev/low
				}
				setPixel(img, i, seaRamp.at(t))
				continue
			}
			tempC := m.Temperature.Cells[i].Average - planet.FreezingPoint
			// The diagram's precipitation axis is in decimeters, capped at
			// genbiome.MaxPrecipitationDM.
			precipDM := m.AnnualPrecipitation.Cells[i] / 10
			if precipDM > float64(genbiome.MaxPrecipitationDM) {
				precipDM = float64(genbiome.MaxPrecipitationDM)
			}
			intensity := 0.6 + 0.8*shadeAt(m, x, y, high)
			c := genbiome.GetWhittakerModBiomeColor(int(tempC), int(precipDM), intensity)
			setPixel(img, i, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return img
}

func setPixel(img *image.RGBA, i int, c color.RGBA) {
	base := i * 4
	img.Pix[base+0] = c.R
	img.Pix[base+1] = c.G
	img.Pix[base+2] = c.B
	img.Pix[base+3] = c.A
}

func minMax(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
