package juliabrot

import (
	"image"
	"runtime"
	"sync"
)

// tile dimensions for the evaluation scheduler. 64x64 keeps tiles small
// enough to balance load across workers on typical grid sizes.
const tileW, tileH = 64, 64

// Evaluate applies the escape-time iteration to every point of grid and
// returns a freshly allocated matrix of the same shape with values in
// [0, p.Niter-1].
//
// In Julia mode the grid point is the starting value and p.C the fixed
// additive constant; in Mandelbrot mode the two swap roles, so p.C acts
// as the fixed starting point. The swap, rather than forcing z0 = 0,
// permits off-origin Mandelbrot variants.
//
// Cells are mutually independent; the grid is split into tiles and the
// tiles are evaluated by one worker per CPU. The result does not alias
// grid or any engine state.
func Evaluate(grid [][]complex128, p Params, mode Mode) [][]int {
	height := len(grid)
	if height == 0 {
		return nil
	}
	width := len(grid[0])

	counts := make([][]int, height)
	for j := range counts {
		counts[j] = make([]int, width)
	}

	tiles := splitRectNoClip(image.Rect(0, 0, width, height), tileW, tileH)
	work := make(chan image.Rectangle, len(tiles))
	for _, t := range tiles {
		work <- t
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < runtime.GOMAXPROCS(0); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range work {
				evaluateTile(grid, counts, t, p, mode)
			}
		}()
	}
	wg.Wait()

	return counts
}

// evaluateTile fills the tile's index range of counts. Each worker owns
// a disjoint range, so no synchronization is needed on the matrix.
func evaluateTile(grid [][]complex128, counts [][]int, t image.Rectangle, p Params, mode Mode) {
	for j := t.Min.Y; j < t.Max.Y; j++ {
		for i := t.Min.X; i < t.Max.X; i++ {
			g := grid[j][i]
			switch mode {
			case Julia:
				counts[j][i] = Iterate(g, p.C, p.N, p.Zmax, p.Niter)
			case Mandelbrot:
				counts[j][i] = Iterate(p.C, g, p.N, p.Zmax, p.Niter)
			}
		}
	}
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
