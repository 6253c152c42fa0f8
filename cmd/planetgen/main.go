package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "planetgen",
		Short: "Procedural planet generator and surface-map rasterizer",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(mapCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(infoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		seed int64
		kind string
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate planet parameters from a seed and write them as YAML",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(seed, kind, out)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "generation seed")
	cmd.Flags().StringVar(&kind, "kind", "rocky", "planet kind: rocky, icy, gas-giant, comet")
	cmd.Flags().StringVar(&out, "out", "planet.yaml", "output parameter file")
	return cmd
}

func mapCmd() *cobra.Command {
	var (
		params     string
		width      int
		height     int
		projection string
		seasons    int
		workers    int
		out        string
		region     []float64
	)
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Rasterize a planet into a surface-map bundle",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMap(params, width, height, projection, region, seasons, workers, out)
		},
	}
	cmd.Flags().StringVar(&params, "planet", "planet.yaml", "planet parameter file")
	cmd.Flags().IntVar(&width, "width", 360, "map width in cells")
	cmd.Flags().IntVar(&height, "height", 180, "map height in cells")
	cmd.Flags().StringVar(&projection, "projection", "equirectangular",
		"map projection: equirectangular or equal-area")
	cmd.Flags().IntVar(&seasons, "seasons", 4, "precipitation seasons per year (0 disables)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = all CPUs)")
	cmd.Flags().Float64SliceVar(&region, "region", nil,
		"bounded region latMin,latMax,lonMin,lonMax in radians (default full planet)")
	cmd.Flags().StringVar(&out, "out", "maps.json", "output bundle file")
	return cmd
}

func renderCmd() *cobra.Command {
	var (
		maps string
		out  string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a surface-map bundle to PNG images",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRender(maps, out)
		},
	}
	cmd.Flags().StringVar(&maps, "maps", "maps.json", "surface map bundle")
	cmd.Flags().StringVar(&out, "out", ".", "output directory")
	return cmd
}

func infoCmd() *cobra.Command {
	var (
		params string
		maps   string
	)
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize a planet parameter file or a surface-map bundle",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInfo(params, maps)
		},
	}
	cmd.Flags().StringVar(&params, "planet", "", "planet parameter file")
	cmd.Flags().StringVar(&maps, "maps", "", "surface map bundle")
	return cmd
}
