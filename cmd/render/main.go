// Command render evaluates one fractal view headlessly and saves it as
// a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/marvec/juliabrot"
	"github.com/marvec/juliabrot/palette"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		width  = flag.Int("width", 1920, "image width in pixels")
		height = flag.Int("height", 1080, "image height in pixels")
		mode   = flag.String("mode", "Mandelbrot", "Julia or Mandelbrot")
		n      = flag.Int("n", 2, "exponent in z = z^n + C")
		cFlag  = flag.String("c", "", "fixed parameter as re,im (Julia seed name also accepted)")
		zmax   = flag.Float64("zmax", 4.0, "bailout radius")
		niter  = flag.Int("niter", 256, "iteration cap")
		bounds = flag.String("bounds", "", "plane region as xmin,xmax,ymin,ymax")
		region = flag.String("region", "", "named landmark region (overrides -bounds): "+strings.Join(landmarkNames(), ", "))
		cmap   = flag.String("cmap", "Jet", "colormap: "+strings.Join(palette.Names(), ", "))
		out    = flag.String("o", "fractal.png", "output file")
	)
	flag.Parse()

	m, err := juliabrot.ParseMode(*mode)
	if err != nil {
		return err
	}

	rect := juliabrot.DefaultRegion
	if m == juliabrot.Mandelbrot {
		rect = juliabrot.Landmarks["full"]
	}
	if *bounds != "" {
		var r juliabrot.Region
		if _, err := fmt.Sscanf(*bounds, "%f,%f,%f,%f", &r.Xmin, &r.Xmax, &r.Ymin, &r.Ymax); err != nil {
			return fmt.Errorf("parse -bounds %q: %w", *bounds, err)
		}
		rect = r
	}
	if *region != "" {
		r, found := juliabrot.Landmarks[*region]
		if !found {
			return fmt.Errorf("unknown region %q, have: %s", *region, strings.Join(landmarkNames(), ", "))
		}
		rect = r
	}
	if !rect.Valid() {
		return fmt.Errorf("region %s: empty extent", rect)
	}

	p := juliabrot.Params{N: *n, Zmax: *zmax, Niter: *niter}
	if m == juliabrot.Julia {
		p.C = juliabrot.DefaultParams.C
	}
	if *cFlag != "" {
		if seed, found := juliabrot.JuliaSeeds[*cFlag]; found {
			p.C = seed
		} else {
			var re, im float64
			if _, err := fmt.Sscanf(*cFlag, "%f,%f", &re, &im); err != nil {
				return fmt.Errorf("parse -c %q: %w", *cFlag, err)
			}
			p.C = complex(re, im)
		}
	}
	if p.N < 1 || p.Niter < 1 || p.Zmax <= 0 {
		return fmt.Errorf("invalid params: n=%d niter=%d zmax=%g", p.N, p.Niter, p.Zmax)
	}

	log.Printf("evaluating %s over %s at %dx%d, niter=%d", m, rect, *width, *height, p.Niter)
	grid, err := juliabrot.Grid(rect, *width, *height)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	counts := juliabrot.Evaluate(grid, p, m)

	img := palette.Image(juliabrot.Frame{Counts: counts, Extent: rect, Niter: p.Niter, Cmap: *cmap})

	log.Printf("saving image to %q", *out)
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("saved %q", *out)
	return nil
}

func landmarkNames() []string {
	names := make([]string, 0, len(juliabrot.Landmarks))
	for name := range juliabrot.Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
