package surfacemap

// Resample maps a grid onto new dimensions and frame by nearest neighbor:
// each destination cell is inverse-mapped to a latitude and longitude, then
// forward-mapped into the source grid, clamped to its bounds. Works for any
// cell type because no values are interpolated.
func Resample[T any](src *Grid[T], from, to Frame, w, h int) (*Grid[T], error) {
	if !src.Valid() {
		return nil, errInvalidGrid
	}
	if err := to.Validate(w, h); err != nil {
		return nil, err
	}
	if err := from.Validate(src.Width, src.Height); err != nil {
		return nil, err
	}
	dst, err := NewGrid[T](w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		lat := to.LatForRow(y, h)
		sy := from.RowForLat(lat, src.Height)
		for x := 0; x < w; x++ {
			lon := to.LonForCol(x, w)
			sx := from.ColForLon(lon, src.Width)
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst, nil
}
