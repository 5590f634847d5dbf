package view

import (
	"fmt"

	"github.com/marvec/juliabrot"
)

// App aggregates the whole mutable application state: parameter store,
// viewport, active mode and colormap selection. One App exists per UI
// session and is touched only by that session's event goroutine; the
// evaluation pipeline receives value snapshots and never aliases back
// into it.
type App struct {
	Store    *Store
	Viewport *Viewport
	Mode     juliabrot.Mode

	// Cmap is the selected colormap name. It is opaque here: stored
	// and forwarded to the render collaborator, never interpreted.
	Cmap string
}

// DefaultCmap is the colormap selected at startup.
const DefaultCmap = "Set3"

// NewApp builds the startup state.
func NewApp() *App {
	s := NewStore()
	return &App{
		Store:    s,
		Viewport: NewViewport(s.Region(), s.Xsize, s.Ysize),
		Mode:     juliabrot.Julia,
		Cmap:     DefaultCmap,
	}
}

// SetMode switches the active fractal mode. Entering Mandelbrot mode
// zeroes the x and y entries unconditionally: the fixed parameter now
// plays the role of the starting point and the conventional start is
// the origin.
func (a *App) SetMode(m juliabrot.Mode) {
	a.Mode = m
	if m == juliabrot.Mandelbrot {
		a.Store.X = 0
		a.Store.Y = 0
	}
}

// SetCmap records the colormap selection.
func (a *App) SetCmap(name string) {
	a.Cmap = name
}

// Apply pushes the current entry fields into the viewport. It fails,
// leaving the viewport untouched, when the bound fields describe an
// empty region.
func (a *App) Apply() error {
	if err := a.Store.Validate(); err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	a.Viewport.Rect = a.Store.Region()
	a.Viewport.Resize(a.Store.Xsize, a.Store.Ysize)
	return nil
}

// Press forwards a pointer press to the viewport.
func (a *App) Press(px, py int) {
	a.Viewport.Press(px, py)
}

// Drag forwards pointer motion with the square modifier state.
func (a *App) Drag(px, py int, square bool) {
	a.Viewport.Drag(px, py, square)
}

// Release closes the gesture. When it produced a new region the bound
// entries are synchronized with it and true is returned, telling the
// front end to re-evaluate.
func (a *App) Release(px, py, button int) bool {
	rect, changed := a.Viewport.Release(px, py, button)
	if changed {
		a.Store.SetRegion(rect)
	}
	return changed
}

// Reset restores every parameter field, the region, and the resolution
// to their startup-captured values.
func (a *App) Reset() {
	a.Store.ResetToDefaults()
	a.Viewport.Rect = a.Store.Region()
	a.Viewport.Resize(a.Store.Xsize, a.Store.Ysize)
}

// Render evaluates the current view and returns the display frame.
func (a *App) Render() (juliabrot.Frame, error) {
	grid, err := juliabrot.Grid(a.Viewport.Rect, a.Viewport.Width, a.Viewport.Height)
	if err != nil {
		return juliabrot.Frame{}, fmt.Errorf("render: %w", err)
	}
	p := a.Store.Params()
	return juliabrot.Frame{
		Counts: juliabrot.Evaluate(grid, p, a.Mode),
		Extent: a.Viewport.Rect,
		Niter:  p.Niter,
		Cmap:   a.Cmap,
	}, nil
}

// Save is a stub: the button exists in the UI but no export format
// is defined yet.
func (a *App) Save() error {
	return nil
}

// SelectionPixels returns the live drag rectangle in pixel coordinates
// for preview rendering, or nil outside a gesture.
func (a *App) SelectionPixels() *juliabrot.PixelRect {
	sel := a.Viewport.Selection()
	if sel == nil {
		return nil
	}
	x0, y0 := a.Viewport.PlaneToPixel(sel.Anchor)
	x1, y1 := a.Viewport.PlaneToPixel(sel.Current)
	return &juliabrot.PixelRect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}
