// Command planet-sweep generates planets across a seed range, rasterizes a
// small surface map for each, and reports the ones whose climate summary
// falls in a habitable band. Useful for hunting seeds worth mapping at full
// resolution.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"planetgen/internal/planet"
	"planetgen/internal/surfacemap"
)

type sweepResult struct {
	seed         int64
	name         string
	landFraction float64
	meanTemp     float64
	meanPrecip   float64
	score        float64
}

func main() {
	from := flag.Int64("from", 1, "first seed")
	count := flag.Int64("count", 100, "number of seeds to sweep")
	kind := flag.String("kind", "rocky", "planet kind to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "number of results to print")
	flag.Parse()

	k := planet.Kind(*kind)
	if !k.Valid() {
		log.Fatalf("unknown planet kind %q", *kind)
	}

	fmt.Printf("Sweeping %d %s seeds from %d (%d workers)\n", *count, k, *from, *workers)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSeed(seed, k)
				if err != nil {
					log.Printf("seed %d: %v", seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		for seed := *from; seed < *from+*count; seed++ {
			jobs <- seed
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].score > all[j].score })

	n := *top
	if n > len(all) {
		n = len(all)
	}
	for _, res := range all[:n] {
		fmt.Printf("seed=%-8d %-24s land=%5.1f%% temp=%6.1fK precip=%6.0fmm score=%.3f\n",
			res.seed, res.name, 100*res.landFraction, res.meanTemp, res.meanPrecip, res.score)
	}
}

func runSeed(seed int64, kind planet.Kind) (sweepResult, error) {
	p, err := planet.Generate(seed, kind)
	if err != nil {
		return sweepResult{}, err
	}
	cfg := surfacemap.Config{
		Width:      36,
		Height:     18,
		Projection: surfacemap.Equirectangular,
		Workers:    1,
	}
	if p.Atmosphere != nil {
		cfg.Seasons = 2
	}
	m, err := surfacemap.Build(p, cfg)
	if err != nil {
		return sweepResult{}, err
	}

	var tempSum float64
	for _, tr := range m.Temperature.Cells {
		tempSum += tr.Average
	}
	meanTemp := tempSum / float64(len(m.Temperature.Cells))

	return sweepResult{
		seed:         seed,
		name:         p.Name,
		landFraction: m.LandFraction,
		meanTemp:     meanTemp,
		meanPrecip:   m.TotalPrecipitation,
		score:        habitability(m.LandFraction, meanTemp, m.TotalPrecipitation),
	}, nil
}

// habitability peaks for a planet with mixed land and ocean, a temperate
// mean surface temperature and moderate rainfall.
func habitability(land, temp, precip float64) float64 {
	score := 1 - abs(land-0.35)
	score *= 1 / (1 + abs(temp-288)/25)
	score *= 1 / (1 + abs(precip-900)/900)
	return score
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
