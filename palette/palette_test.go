package palette

import (
	"image/color"
	"sort"
	"testing"

	"github.com/marvec/juliabrot"
)

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	found := false
	for _, name := range names {
		if name == "Set3" {
			found = true
		}
	}
	if !found {
		t.Errorf("startup colormap Set3 missing from %v", names)
	}
}

func TestAtEndpoints(t *testing.T) {
	// Greys runs white to black, so the count range endpoints must
	// land on the LUT ends.
	if got := At("Greys", 0, 256); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("At(Greys, 0) = %v, want white", got)
	}
	if got := At("Greys", 255, 256); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("At(Greys, 255) = %v, want black", got)
	}
}

func TestAtUnknownNameFallsBack(t *testing.T) {
	// The colormap name is opaque upstream; an unknown selection must
	// still produce a color rather than fail.
	if got, want := At("no-such-map", 0, 256), At("Greys", 0, 256); got != want {
		t.Errorf("unknown map gave %v, want fallback %v", got, want)
	}
}

func TestAtSmallCap(t *testing.T) {
	// niter=1 collapses the count range to a single value.
	got := At("Jet", 0, 1)
	if got.A != 255 {
		t.Errorf("At with niter=1 returned %v", got)
	}
}

func TestImage(t *testing.T) {
	frame := juliabrot.Frame{
		Counts: [][]int{
			{0, 0, 0},
			{15, 15, 15},
		},
		Niter: 16,
		Cmap:  "Greys",
	}
	img := Image(frame)

	if got := img.Bounds(); got.Dx() != 3 || got.Dy() != 2 {
		t.Fatalf("image bounds %v, want 3x2", got)
	}
	// Matrix row 0 is the top image row.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("top-left = %v, want white", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("bottom-left = %v, want black", got)
	}
}

func TestLUTsCoverFullRange(t *testing.T) {
	for _, name := range Names() {
		lut := lookup(name)
		for i, c := range lut {
			if c.A != 255 {
				t.Errorf("%s[%d] has alpha %d, want 255", name, i, c.A)
			}
		}
	}
}
