package main

import (
	"fmt"
	"os"
	"path/filepath"

	"planetgen/internal/planet"
	"planetgen/internal/render"
	"planetgen/internal/surfacemap"
)

func runGenerate(seed int64, kind, out string) error {
	k := planet.Kind(kind)
	if !k.Valid() {
		return fmt.Errorf("generate: unknown planet kind %q", kind)
	}
	params, err := planet.GenerateParams(seed, k)
	if err != nil {
		return fmt.Errorf("generate: seed %d: %w", seed, err)
	}
	if err := params.Save(out); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Printf("generated %s planet %q (seed %d) -> %s\n", kind, params.Name, seed, out)
	return nil
}

func runMap(paramsPath string, width, height int, projection string, region []float64, seasons, workers int, out string) error {
	params, err := planet.LoadParams(paramsPath)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	p, err := params.Build()
	if err != nil {
		return fmt.Errorf("map: building planet %q: %w", params.Name, err)
	}
	cfg := surfacemap.Config{
		Width:      width,
		Height:     height,
		Projection: surfacemap.Projection(projection),
		Seasons:    seasons,
		Workers:    workers,
	}
	switch len(region) {
	case 0:
	case 4:
		cfg.Region = surfacemap.Region{
			LatMin: region[0], LatMax: region[1],
			LonMin: region[2], LonMax: region[3],
		}
	default:
		return fmt.Errorf("map: --region needs latMin,latMax,lonMin,lonMax, got %d values", len(region))
	}
	maps, err := surfacemap.Build(p, cfg)
	if err != nil {
		return fmt.Errorf("map: rasterizing planet %q at %dx%d: %w", p.Name, width, height, err)
	}
	if err := surfacemap.Save(out, maps); err != nil {
		return fmt.Errorf("map: %w", err)
	}
	fmt.Printf("mapped %q at %dx%d (%s, %d seasons) -> %s\n",
		p.Name, width, height, projection, seasons, out)
	return nil
}

func runRender(mapsPath, outDir string) error {
	maps, err := surfacemap.Load(mapsPath)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("render: creating %s: %w", outDir, err)
	}

	write := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("render: layer %s: %w", name, err)
		}
		return nil
	}
	if err := write("elevation", render.WritePNG(filepath.Join(outDir, "elevation.png"), render.Elevation(maps))); err != nil {
		return err
	}
	if err := write("hillshade", render.WritePNG(filepath.Join(outDir, "hillshade.png"), render.Hillshade(maps))); err != nil {
		return err
	}
	if err := write("temperature", render.WritePNG(filepath.Join(outDir, "temperature.png"), render.Temperature(maps))); err != nil {
		return err
	}
	if err := write("biomes", render.WritePNG(filepath.Join(outDir, "biomes.png"), render.Biomes(maps))); err != nil {
		return err
	}
	if err := write("whittaker", render.WritePNG(filepath.Join(outDir, "whittaker.png"), render.Whittaker(maps))); err != nil {
		return err
	}

	annual, err := render.Precipitation(maps.AnnualPrecipitation)
	if err != nil {
		return fmt.Errorf("render: layer precipitation: %w", err)
	}
	if err := write("precipitation", render.WritePNG(filepath.Join(outDir, "precipitation.png"), annual)); err != nil {
		return err
	}
	for i := 0; i < maps.Seasons; i++ {
		img, err := render.Precipitation(maps.SeasonPrecipitation[i])
		if err != nil {
			return fmt.Errorf("render: season %d precipitation: %w", i, err)
		}
		name := fmt.Sprintf("precipitation-season-%d.png", i)
		if err := write(name, render.WritePNG(filepath.Join(outDir, name), img)); err != nil {
			return err
		}
	}
	fmt.Printf("rendered %q -> %s\n", maps.PlanetName, outDir)
	return nil
}

func runInfo(paramsPath, mapsPath string) error {
	if paramsPath == "" && mapsPath == "" {
		return fmt.Errorf("info: pass --planet and/or --maps")
	}
	if paramsPath != "" {
		params, err := planet.LoadParams(paramsPath)
		if err != nil {
			return fmt.Errorf("info: %w", err)
		}
		p, err := params.Build()
		if err != nil {
			return fmt.Errorf("info: building planet %q: %w", params.Name, err)
		}
		fmt.Printf("planet %q (%s)\n", p.Name, p.Kind)
		fmt.Printf("  radius            %.0f m\n", p.Radius)
		fmt.Printf("  mass              %.3e kg\n", p.Mass)
		fmt.Printf("  surface gravity   %.2f m/s^2\n", p.SurfaceGravity)
		fmt.Printf("  max elevation     %.0f m\n", p.MaxElevation)
		fmt.Printf("  sea level         %.0f m\n", p.SeaLevel)
		fmt.Printf("  rotational period %.0f s\n", p.RotationalPeriod)
		fmt.Printf("  axial tilt        %.3f rad\n", p.AxialTilt)
		if p.Orbit != nil {
			fmt.Printf("  orbit             %.3e m (e=%.4f)\n",
				p.Orbit.SemiMajorAxis, p.Orbit.Eccentricity)
		}
		if p.Atmosphere != nil {
			fmt.Printf("  atmosphere        %.3e kg, greenhouse %.2f\n",
				p.Atmosphere.Mass, p.Atmosphere.GreenhouseFactor)
		}
		fmt.Printf("  hydrosphere       %v\n", p.Hydrosphere.Present)
	}
	if mapsPath != "" {
		maps, err := surfacemap.Load(mapsPath)
		if err != nil {
			return fmt.Errorf("info: %w", err)
		}
		fmt.Printf("surface maps for %q (%s)\n", maps.PlanetName, maps.PlanetID)
		fmt.Printf("  resolution         %dx%d (%s)\n", maps.Width, maps.Height, maps.Projection)
		fmt.Printf("  seasons            %d\n", maps.Seasons)
		fmt.Printf("  average elevation  %.1f m\n", maps.AverageElevation)
		fmt.Printf("  land fraction      %.1f%%\n", 100*maps.LandFraction)
		fmt.Printf("  mean precipitation %.0f mm/year\n", maps.TotalPrecipitation)
	}
	return nil
}
