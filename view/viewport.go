// Package view owns the interactive state of the explorer: the visible
// plane region, the pointer gesture machine that re-targets it, and the
// text-backed parameter store behind the UI entries.
package view

import (
	"github.com/marvec/juliabrot"
)

// Zoom factors applied by a click without drag. Primary button zooms
// in, secondary zooms out; other buttons leave the region untouched.
const (
	ZoomInFactor  = 0.75
	ZoomOutFactor = 1.5
)

// Pointer button numbers as delivered by the UI collaborator.
const (
	ButtonPrimary   = 1
	ButtonSecondary = 3
)

// Selection is the transient state of a press-drag gesture: the plane
// coordinate where the button went down and the one under the pointer
// now.
type Selection struct {
	Anchor  complex128
	Current complex128
	Square  bool
}

// Viewport maps between pixel space and the visible plane region and
// turns pointer gestures into new regions. It is mutated only by the
// front end's single event goroutine.
type Viewport struct {
	Rect   juliabrot.Region
	Width  int
	Height int

	sel *Selection
}

// NewViewport returns a viewport over rect sampled at width x height.
func NewViewport(rect juliabrot.Region, width, height int) *Viewport {
	return &Viewport{Rect: rect, Width: width, Height: height}
}

// PixelToPlane linearly maps a pixel coordinate to the plane: px over
// [0, Width-1] onto [Xmin, Xmax] and py over [0, Height-1] onto
// [Ymin, Ymax]. Increasing pixel y maps to increasing imaginary part,
// matching the row order the sample grid is built with.
func (v *Viewport) PixelToPlane(px, py int) complex128 {
	re := v.Rect.Xmin + float64(px)/float64(v.Width-1)*v.Rect.Width()
	im := v.Rect.Ymin + float64(py)/float64(v.Height-1)*v.Rect.Height()
	return complex(re, im)
}

// PlaneToPixel is the inverse map, rounding to the nearest pixel.
func (v *Viewport) PlaneToPixel(z complex128) (px, py int) {
	px = int((real(z)-v.Rect.Xmin)/v.Rect.Width()*float64(v.Width-1) + 0.5)
	py = int((imag(z)-v.Rect.Ymin)/v.Rect.Height()*float64(v.Height-1) + 0.5)
	return px, py
}

// Press opens a selection anchored at the pointer position. A press
// while a selection is already open is ignored; nested gestures are not
// a valid input.
func (v *Viewport) Press(px, py int) {
	if v.sel != nil {
		return
	}
	p := v.PixelToPlane(px, py)
	v.sel = &Selection{Anchor: p, Current: p}
}

// Drag moves the live corner of the open selection. With the square
// modifier held the imaginary extent is slaved to the real extent,
// keeping the drag's sign, so the selection stays square. Without an
// open selection this is plain pointer motion and is ignored.
func (v *Viewport) Drag(px, py int, square bool) {
	if v.sel == nil {
		return
	}
	cur := v.PixelToPlane(px, py)
	if square {
		cur = complex(real(cur), imag(v.sel.Anchor)+(real(cur)-real(v.sel.Anchor)))
	}
	v.sel.Current = cur
	v.sel.Square = square
}

// Selection exposes the live selection for preview rendering, or nil
// when no gesture is in progress.
func (v *Viewport) Selection() *Selection {
	return v.sel
}

// Release closes the open selection and computes the next region.
//
// A gesture whose selection box is degenerate (zero extent on either
// axis, which includes the plain click with no motion at all) is a zoom
// click: primary button shrinks the region extent by ZoomInFactor,
// secondary grows it by ZoomOutFactor, both re-centered on the released
// plane coordinate; any other button changes nothing. A proper drag
// yields the bounding box of anchor and release point regardless of
// drag direction.
//
// The returned bool reports whether the viewport's region changed.
// A release without a preceding press is ignored.
func (v *Viewport) Release(px, py int, button int) (juliabrot.Region, bool) {
	if v.sel == nil {
		return v.Rect, false
	}
	sel := *v.sel
	v.sel = nil

	cur := v.PixelToPlane(px, py)
	if sel.Square {
		cur = complex(real(cur), imag(sel.Anchor)+(real(cur)-real(sel.Anchor)))
	}

	box := juliabrot.RegionFromCorners(sel.Anchor, cur)
	if !box.Valid() {
		// Degenerate box: treat as a click at the release point.
		var factor float64
		switch button {
		case ButtonPrimary:
			factor = ZoomInFactor
		case ButtonSecondary:
			factor = ZoomOutFactor
		default:
			return v.Rect, false
		}
		v.Rect = v.Rect.ZoomAt(real(cur), imag(cur), factor)
		return v.Rect, true
	}

	v.Rect = box
	return v.Rect, true
}

// Resize updates the pixel resolution without touching the region.
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}
