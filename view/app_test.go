package view

import (
	"testing"

	"github.com/marvec/juliabrot"
)

func TestAppModeSwitchZeroesC(t *testing.T) {
	a := NewApp()
	a.Store.Set("x", "0.285")
	a.Store.Set("y", "0.01")

	// Entering Mandelbrot zeroes the fixed parameter unconditionally,
	// even after edits.
	a.SetMode(juliabrot.Mandelbrot)
	if got := a.Store.Get("x"); got != "0.0" {
		t.Errorf("x = %q after mode switch, want %q", got, "0.0")
	}
	if got := a.Store.Get("y"); got != "0.0" {
		t.Errorf("y = %q after mode switch, want %q", got, "0.0")
	}

	// Switching back does not restore them.
	a.SetMode(juliabrot.Julia)
	if got := a.Store.Get("x"); got != "0.0" {
		t.Errorf("x = %q after switching back, want %q", got, "0.0")
	}
}

func TestAppReleaseSyncsBounds(t *testing.T) {
	a := NewApp()

	a.Press(100, 100)
	a.Drag(400, 500, false)
	if !a.Release(400, 500, ButtonPrimary) {
		t.Fatal("box zoom reported no change")
	}

	if got, want := a.Store.Region(), a.Viewport.Rect; got != want {
		t.Errorf("store bounds %v, viewport rect %v", got, want)
	}
}

func TestAppApply(t *testing.T) {
	a := NewApp()
	a.Store.Set("xmin", "-0.8")
	a.Store.Set("xmax", "-0.7")
	a.Store.Set("ymin", "0.05")
	a.Store.Set("ymax", "0.15")
	a.Store.Set("xsize", "320")
	a.Store.Set("ysize", "240")

	if err := a.Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := a.Viewport.Rect; got != (juliabrot.Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}) {
		t.Errorf("viewport rect = %v", got)
	}
	if a.Viewport.Width != 320 || a.Viewport.Height != 240 {
		t.Errorf("viewport size = %dx%d, want 320x240", a.Viewport.Width, a.Viewport.Height)
	}
}

func TestAppApplyRejectsEmptyRegion(t *testing.T) {
	a := NewApp()
	before := a.Viewport.Rect
	a.Store.Set("xmax", "-1.5")

	if err := a.Apply(); err == nil {
		t.Fatal("empty region applied without error")
	}
	if a.Viewport.Rect != before {
		t.Errorf("viewport rect changed to %v", a.Viewport.Rect)
	}
}

func TestAppReset(t *testing.T) {
	a := NewApp()
	startRect := a.Viewport.Rect

	a.Store.Set("niter", "32")
	a.Press(100, 100)
	a.Release(100, 100, ButtonPrimary)
	a.SetMode(juliabrot.Mandelbrot)
	a.Store.Set("xsize", "128")
	if err := a.Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	a.Reset()
	if a.Viewport.Rect != startRect {
		t.Errorf("rect after reset = %v, want %v", a.Viewport.Rect, startRect)
	}
	if a.Viewport.Width != 600 || a.Viewport.Height != 600 {
		t.Errorf("size after reset = %dx%d, want 600x600", a.Viewport.Width, a.Viewport.Height)
	}
	if got := a.Store.Get("niter"); got != "256" {
		t.Errorf("niter after reset = %q, want %q", got, "256")
	}
	// Reset restores parameter fields but not the mode selector.
	if a.Mode != juliabrot.Mandelbrot {
		t.Errorf("mode after reset = %v, want Mandelbrot", a.Mode)
	}
}

func TestAppRender(t *testing.T) {
	a := NewApp()
	a.Store.Set("xsize", "64")
	a.Store.Set("ysize", "48")
	a.Store.Set("niter", "16")
	if err := a.Apply(); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	frame, err := a.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(frame.Counts) != 48 || len(frame.Counts[0]) != 64 {
		t.Fatalf("frame shape %dx%d, want 64x48", len(frame.Counts[0]), len(frame.Counts))
	}
	if frame.Extent != a.Viewport.Rect {
		t.Errorf("frame extent %v, want %v", frame.Extent, a.Viewport.Rect)
	}
	if frame.Niter != 16 {
		t.Errorf("frame niter = %d, want 16", frame.Niter)
	}
	if frame.Cmap != DefaultCmap {
		t.Errorf("frame cmap = %q, want %q", frame.Cmap, DefaultCmap)
	}
	for _, row := range frame.Counts {
		for _, k := range row {
			if k < 0 || k > 15 {
				t.Fatalf("count %d outside [0, 15]", k)
			}
		}
	}
}

func TestAppSelectionPixels(t *testing.T) {
	a := NewApp()
	if a.SelectionPixels() != nil {
		t.Error("selection reported outside a gesture")
	}

	a.Press(100, 150)
	a.Drag(300, 400, false)
	sel := a.SelectionPixels()
	if sel == nil {
		t.Fatal("no selection during drag")
	}
	if sel.X0 != 100 || sel.Y0 != 150 || sel.X1 != 300 || sel.Y1 != 400 {
		t.Errorf("selection = %+v, want {100 150 300 400}", sel)
	}
}
