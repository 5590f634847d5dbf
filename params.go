package juliabrot

import "fmt"

// Mode selects which of the two iteration values is fixed and which
// varies per grid point.
type Mode int

const (
	// Julia: the grid supplies the starting value z0, C is fixed.
	Julia Mode = iota
	// Mandelbrot: the grid supplies the additive constant, the fixed
	// parameter becomes the starting value z0.
	Mandelbrot
)

func (m Mode) String() string {
	switch m {
	case Julia:
		return "Julia"
	case Mandelbrot:
		return "Mandelbrot"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the two UI labels back to their variants.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Julia":
		return Julia, nil
	case "Mandelbrot":
		return Mandelbrot, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Params are the per-evaluation fractal parameters for z -> z^n + C.
type Params struct {
	N     int        // exponent, >= 1
	C     complex128 // fixed parameter (C in Julia mode, z0 in Mandelbrot mode)
	Zmax  float64    // bailout radius, > 0
	Niter int        // iteration cap, >= 1
}

// DefaultParams mirror the application's startup values.
var DefaultParams = Params{N: 2, C: complex(-0.4, 0.6), Zmax: 4.0, Niter: 256}

// Well-known Julia parameters worth revisiting.
var JuliaSeeds = map[string]complex128{
	"classic":  complex(-0.4, 0.6),
	"dendrite": complex(0, 1),
	"rabbit":   complex(-0.123, 0.745),
	"siegel":   complex(-0.391, -0.587),
	"basilica": complex(-1, 0),
}
