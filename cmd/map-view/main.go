//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"planetgen/internal/app"
	"planetgen/internal/surfacemap"
)

func main() {
	path := flag.String("maps", "maps.json", "surface map bundle to view")
	scale := flag.Int("scale", 3, "pixels per map cell")
	flag.Parse()

	maps, err := surfacemap.Load(*path)
	if err != nil {
		log.Fatalf("loading %s: %v", *path, err)
	}

	game := app.New(maps, *scale)

	ebiten.SetWindowTitle("planetgen: " + maps.PlanetName)
	ebiten.SetWindowSize(maps.Width**scale, maps.Height**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
