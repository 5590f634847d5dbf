package juliabrot

import "fmt"

// Grid samples r on a width x height lattice of complex points.
// Column i maps to re = Xmin + i*(Xmax-Xmin)/(width-1), row j to
// im = Ymin + j*(Ymax-Ymin)/(height-1); both endpoints are included.
// Row 0 therefore carries Ymin, matching the pixel-space mapping used
// by the viewport so conversions round-trip.
func Grid(r Region, width, height int) ([][]complex128, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("grid resolution %dx%d: both axes need at least 2 samples", width, height)
	}
	if !r.Valid() {
		return nil, fmt.Errorf("grid region %s: empty extent", r)
	}

	xstep := r.Width() / float64(width-1)
	ystep := r.Height() / float64(height-1)

	g := make([][]complex128, height)
	for j := range g {
		row := make([]complex128, width)
		im := r.Ymin + float64(j)*ystep
		for i := range row {
			row[i] = complex(r.Xmin+float64(i)*xstep, im)
		}
		g[j] = row
	}
	return g, nil
}
