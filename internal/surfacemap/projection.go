package surfacemap

import (
	"fmt"
	"math"
)

// Projection selects how grid rows and columns map to latitudes and
// longitudes.
type Projection string

const (
	// Equirectangular spaces latitude linearly across rows.
	Equirectangular Projection = "equirectangular"
	// EqualArea is the cylindrical equal-area projection: rows are spaced by
	// the sine of latitude so every cell covers the same physical area.
	EqualArea Projection = "equal-area"
)

// Valid reports whether p names a known projection.
func (p Projection) Valid() bool {
	return p == Equirectangular || p == EqualArea
}

// Region bounds the mapped part of the surface in radians. The zero value
// is replaced by FullPlanet wherever a region is consumed.
type Region struct {
	LatMin float64 `json:"latMin"`
	LatMax float64 `json:"latMax"`
	LonMin float64 `json:"lonMin"`
	LonMax float64 `json:"lonMax"`
}

// FullPlanet covers every latitude and longitude.
func FullPlanet() Region {
	return Region{
		LatMin: -math.Pi / 2,
		LatMax: math.Pi / 2,
		LonMin: -math.Pi,
		LonMax: math.Pi,
	}
}

// IsZero reports whether the region was left unset.
func (r Region) IsZero() bool {
	return r == Region{}
}

// Validate rejects empty or out-of-range bounds.
func (r Region) Validate() error {
	if r.LatMin >= r.LatMax || r.LonMin >= r.LonMax {
		return fmt.Errorf("empty region [%.3f,%.3f]x[%.3f,%.3f]",
			r.LatMin, r.LatMax, r.LonMin, r.LonMax)
	}
	if r.LatMin < -math.Pi/2 || r.LatMax > math.Pi/2 {
		return fmt.Errorf("region latitude [%.3f,%.3f] outside [-pi/2,pi/2]",
			r.LatMin, r.LatMax)
	}
	if r.LonMin < -math.Pi || r.LonMax > math.Pi {
		return fmt.Errorf("region longitude [%.3f,%.3f] outside [-pi,pi]",
			r.LonMin, r.LonMax)
	}
	return nil
}

// equatorSymmetric reports whether the region's latitude bands mirror
// around the equator.
func (r Region) equatorSymmetric() bool {
	return r.LatMin == -r.LatMax
}

// Frame ties a projection to the region it maps, which is everything
// needed to move between grid indices and surface coordinates.
type Frame struct {
	Projection Projection
	Region     Region
}

// NewFrame builds a frame, substituting the full planet for a zero region.
func NewFrame(p Projection, r Region) Frame {
	if r.IsZero() {
		r = FullPlanet()
	}
	return Frame{Projection: p, Region: r}
}

// Validate checks the frame against grid dimensions. Equal-area grids of an
// equator-symmetric region need an even height so the latitude bands pair
// up across the equator.
func (f Frame) Validate(w, h int) error {
	if !f.Projection.Valid() {
		return fmt.Errorf("unknown projection %q", f.Projection)
	}
	if err := f.Region.Validate(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("map resolution must be positive, got %dx%d", w, h)
	}
	if f.Projection == EqualArea && f.Region.equatorSymmetric() && h%2 != 0 {
		return fmt.Errorf("equal-area maps need an even height, got %d", h)
	}
	return nil
}

// LatForRow returns the latitude of the center of row y. Row 0 is the
// northernmost band.
func (f Frame) LatForRow(y, h int) float64 {
	t := (float64(y) + 0.5) / float64(h)
	if f.Projection == EqualArea {
		sinMax := math.Sin(f.Region.LatMax)
		sinMin := math.Sin(f.Region.LatMin)
		s := sinMax - t*(sinMax-sinMin)
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		return math.Asin(s)
	}
	return f.Region.LatMax - t*(f.Region.LatMax-f.Region.LatMin)
}

// LonForCol returns the longitude of the center of column x.
func (f Frame) LonForCol(x, w int) float64 {
	t := (float64(x) + 0.5) / float64(w)
	return f.Region.LonMin + t*(f.Region.LonMax-f.Region.LonMin)
}

// RowForLat returns the row whose band contains the latitude, clamped to
// the grid.
func (f Frame) RowForLat(lat float64, h int) int {
	var t float64
	if f.Projection == EqualArea {
		sinMax := math.Sin(f.Region.LatMax)
		sinMin := math.Sin(f.Region.LatMin)
		t = (sinMax - math.Sin(lat)) / (sinMax - sinMin)
	} else {
		t = (f.Region.LatMax - lat) / (f.Region.LatMax - f.Region.LatMin)
	}
	return clampIndex(int(math.Round(t*float64(h)-0.5)), h)
}

// ColForLon returns the column whose band contains the longitude, clamped
// to the grid.
func (f Frame) ColForLon(lon float64, w int) int {
	t := (lon - f.Region.LonMin) / (f.Region.LonMax - f.Region.LonMin)
	return clampIndex(int(math.Round(t*float64(w)-0.5)), w)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// CellArea returns the physical surface area in square meters covered by
// any cell in row y of a w-by-h grid on a sphere of the given radius.
func (f Frame) CellArea(y, w, h int, radius float64) float64 {
	lonSpan := (f.Region.LonMax - f.Region.LonMin) / float64(w)
	top := float64(y) / float64(h)
	bottom := float64(y+1) / float64(h)
	var sinTop, sinBottom float64
	if f.Projection == EqualArea {
		sinMax := math.Sin(f.Region.LatMax)
		sinMin := math.Sin(f.Region.LatMin)
		sinTop = sinMax - top*(sinMax-sinMin)
		sinBottom = sinMax - bottom*(sinMax-sinMin)
	} else {
		sinTop = math.Sin(f.Region.LatMax - top*(f.Region.LatMax-f.Region.LatMin))
		sinBottom = math.Sin(f.Region.LatMax - bottom*(f.Region.LatMax-f.Region.LatMin))
	}
	return radius * radius * lonSpan * math.Abs(sinTop-sinBottom)
}
