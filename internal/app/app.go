//go:build ebiten

package app

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"planetgen/internal/render"
	"planetgen/internal/surfacemap"
)

type layer int

const (
	layerElevation layer = iota
	layerHillshade
	layerTemperature
	layerBiomes
	layerWhittaker
	layerAnnualPrecipitation
	layerSeasonPrecipitation
	layerCount
)

func (l layer) String() string {
	switch l {
	case layerElevation:
		return "elevation"
	case layerHillshade:
		return "hillshade"
	case layerTemperature:
		return "temperature"
	case layerBiomes:
		return "biomes"
	case layerWhittaker:
		return "whittaker"
	case layerAnnualPrecipitation:
		return "annual precipitation"
	case layerSeasonPrecipitation:
		return "season precipitation"
	}
	return "unknown"
}

// Game adapts a surface-map bundle to the ebiten.Game interface. Layers
// render lazily and are cached, so switching back to a layer is free.
type Game struct {
	maps   *surfacemap.SurfaceMaps
	scale  int
	layer  layer
	season int

	cache map[string]*ebiten.Image
}

// New constructs a viewer for the provided bundle.
func New(m *surfacemap.SurfaceMaps, scale int) *Game {
	return &Game{
		maps:  m,
		scale: scale,
		cache: map[string]*ebiten.Image{},
	}
}

// Update handles layer and season switching.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.layer = (g.layer + 1) % layerCount
		if g.layer == layerSeasonPrecipitation && g.maps.Seasons == 0 {
			g.layer = 0
		}
	}
	if g.layer == layerSeasonPrecipitation && g.maps.Seasons > 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			g.season = (g.season + 1) % g.maps.Seasons
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
			g.season = (g.season + g.maps.Seasons - 1) % g.maps.Seasons
		}
	}
	return nil
}

func (g *Game) currentImage() (*ebiten.Image, error) {
	key := g.layer.String()
	if g.layer == layerSeasonPrecipitation {
		key = fmt.Sprintf("%s/%d", key, g.season)
	}
	if img, ok := g.cache[key]; ok {
		return img, nil
	}
	var (
		raster *image.RGBA
		err    error
	)
	switch g.layer {
	case layerElevation:
		raster = render.Elevation(g.maps)
	case layerHillshade:
		raster = render.Hillshade(g.maps)
	case layerTemperature:
		raster = render.Temperature(g.maps)
	case layerBiomes:
		raster = render.Biomes(g.maps)
	case layerWhittaker:
		raster = render.Whittaker(g.maps)
	case layerAnnualPrecipitation:
		raster, err = render.Precipitation(g.maps.AnnualPrecipitation)
	case layerSeasonPrecipitation:
		raster, err = render.Precipitation(g.maps.SeasonPrecipitation[g.season])
	}
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(raster)
	g.cache[key] = img
	return img, nil
}

// Draw renders the active layer plus a one-line status.
func (g *Game) Draw(screen *ebiten.Image) {
	img, err := g.currentImage()
	if err != nil {
		ebitenutil.DebugPrint(screen, err.Error())
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(img, &op)

	status := fmt.Sprintf("%s: %s", g.maps.PlanetName, g.layer)
	if g.layer == layerSeasonPrecipitation {
		status = fmt.Sprintf("%s %d/%d", status, g.season+1, g.maps.Seasons)
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.maps.Width * g.scale, g.maps.Height * g.scale
}
