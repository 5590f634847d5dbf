package juliabrot

import "fmt"

// Region is a bounding rectangle in the complex plane: the real axis
// spans [Xmin, Xmax], the imaginary axis [Ymin, Ymax].
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultRegion is the startup view, wide enough to frame both the
// classic Julia sets and the full Mandelbrot cardioid.
var DefaultRegion = Region{Xmin: -1.5, Xmax: 1.5, Ymin: -1.5, Ymax: 1.5}

func (r Region) Width() float64  { return r.Xmax - r.Xmin }
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Valid reports whether the region has positive extent on both axes.
func (r Region) Valid() bool {
	return r.Xmax > r.Xmin && r.Ymax > r.Ymin
}

// ZoomAt returns a region centered on (re, im) with both extents scaled
// by factor relative to r. Factors below 1 zoom in, above 1 zoom out.
func (r Region) ZoomAt(re, im, factor float64) Region {
	xlen := factor * r.Width()
	ylen := factor * r.Height()
	return Region{
		Xmin: re - xlen/2,
		Xmax: re + xlen/2,
		Ymin: im - ylen/2,
		Ymax: im + ylen/2,
	}
}

// RegionFromCorners returns the axis-aligned bounding box of two
// arbitrary corner points, independent of their order.
func RegionFromCorners(a, b complex128) Region {
	return Region{
		Xmin: min(real(a), real(b)),
		Xmax: max(real(a), real(b)),
		Ymin: min(imag(a), imag(b)),
		Ymax: max(imag(a), imag(b)),
	}
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Classic regions / landmarks in the Mandelbrot set.
// Selectable via the -region flag of cmd/render.
var Landmarks = map[string]Region{
	// Full set with some margin around the cardioid
	"full": {Xmin: -2.2, Xmax: 0.9, Ymin: -1.4, Ymax: 1.4},

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	"seahorse": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"minibrot": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},

	// Triple Spiral – threefold symmetric spiral structure
	"triplespiral": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
}
