// Package surfacemap rasterizes a planet's terrain and climate into 2D
// grids: one generation run walks elevation, temperature, per-season
// precipitation and biome classification passes in order and returns an
// immutable SurfaceMaps bundle.
package surfacemap

import "fmt"

// Grid stores a 2D field of cell values in row-major order. X indexes
// longitude bins west to east, Y indexes latitude bins north to south; the
// index order is identical for every grid of one map run, so cross-grid
// lookups by (x, y) need no re-projection.
type Grid[T any] struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Cells  []T `json:"cells"`
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid[T]{Width: w, Height: h, Cells: make([]T, w*h)}, nil
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.Width + x }

// At returns the value at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.Cells[y*g.Width+x] }

// Set stores a value at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.Cells[y*g.Width+x] = v }

// Valid reports whether the grid's backing slice matches its dimensions.
func (g *Grid[T]) Valid() bool {
	return g != nil && g.Width > 0 && g.Height > 0 && len(g.Cells) == g.Width*g.Height
}
