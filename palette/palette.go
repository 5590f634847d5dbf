// Package palette maps iteration-count matrices to RGBA images through
// named colormaps. The core treats colormap names as opaque; this
// package is the collaborator that interprets them.
package palette

import (
	"image"
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/marvec/juliabrot"
)

// lutSize is the number of quantized colors per map.
const lutSize = 256

var luts = map[string]*[lutSize]color.RGBA{
	"Greys":   gradient(rgb(255, 255, 255), rgb(0, 0, 0)),
	"Hot":     gradient(rgb(10, 0, 0), rgb(230, 0, 0), rgb(255, 210, 0), rgb(255, 255, 255)),
	"Hsv":     hsvWheel(),
	"Jet":     gradient(rgb(0, 0, 143), rgb(0, 0, 255), rgb(0, 255, 255), rgb(255, 255, 0), rgb(255, 0, 0), rgb(128, 0, 0)),
	"Ocean":   gradient(rgb(0, 102, 0), rgb(0, 26, 102), rgb(230, 255, 255)),
	"Set3":    bands(set3),
	"Viridis": gradient(rgb(68, 1, 84), rgb(59, 82, 139), rgb(33, 145, 140), rgb(94, 201, 98), rgb(253, 231, 37)),
}

// set3 is the qualitative 12-color cycle behind the startup colormap.
var set3 = []color.RGBA{
	rgba(141, 211, 199), rgba(255, 255, 179), rgba(190, 186, 218),
	rgba(251, 128, 114), rgba(128, 177, 211), rgba(253, 180, 98),
	rgba(179, 222, 105), rgba(252, 205, 229), rgba(217, 217, 217),
	rgba(188, 128, 189), rgba(204, 235, 197), rgba(255, 237, 111),
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// gradient builds a LUT by piecewise Lab-space blending between stops.
func gradient(stops ...colorful.Color) *[lutSize]color.RGBA {
	var lut [lutSize]color.RGBA
	segments := len(stops) - 1
	for i := range lut {
		t := float64(i) / float64(lutSize-1) * float64(segments)
		seg := int(t)
		if seg >= segments {
			seg = segments - 1
		}
		c := stops[seg].BlendLab(stops[seg+1], t-float64(seg)).Clamped()
		r, g, b := c.RGB255()
		lut[i] = rgba(r, g, b)
	}
	return &lut
}

// hsvWheel sweeps the full hue circle at full saturation.
func hsvWheel() *[lutSize]color.RGBA {
	var lut [lutSize]color.RGBA
	for i := range lut {
		h := float64(i) / float64(lutSize) * 360
		r, g, b := colorful.Hsv(h, 1, 1).RGB255()
		lut[i] = rgba(r, g, b)
	}
	return &lut
}

// bands builds a LUT that steps through a qualitative color cycle
// instead of interpolating.
func bands(cycle []color.RGBA) *[lutSize]color.RGBA {
	var lut [lutSize]color.RGBA
	for i := range lut {
		band := i * len(cycle) / lutSize
		lut[i] = cycle[band]
	}
	return &lut
}

// Names lists the available colormaps, sorted, for UI enumeration.
func Names() []string {
	names := make([]string, 0, len(luts))
	for name := range luts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookup falls back to Greys for unknown names: the selection is opaque
// to the core, so an unrecognized name must still render something.
func lookup(name string) *[lutSize]color.RGBA {
	if lut, found := luts[name]; found {
		return lut
	}
	return luts["Greys"]
}

// At maps one iteration count to a color. Counts are normalized over
// [0, niter-1], the full value range the engine produces.
func At(name string, count, niter int) color.RGBA {
	lut := lookup(name)
	if niter < 2 {
		return lut[0]
	}
	idx := count * (lutSize - 1) / (niter - 1)
	if idx < 0 {
		idx = 0
	} else if idx >= lutSize {
		idx = lutSize - 1
	}
	return lut[idx]
}

// Image renders a frame to RGBA. Matrix row 0 becomes the top image
// row; no vertical flip happens here or anywhere downstream.
func Image(f juliabrot.Frame) *image.RGBA {
	height := len(f.Counts)
	width := 0
	if height > 0 {
		width = len(f.Counts[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	lut := lookup(f.Cmap)
	for y, row := range f.Counts {
		for x, k := range row {
			idx := 0
			if f.Niter > 1 {
				idx = k * (lutSize - 1) / (f.Niter - 1)
			}
			if idx < 0 {
				idx = 0
			} else if idx >= lutSize {
				idx = lutSize - 1
			}
			img.SetRGBA(x, y, lut[idx])
		}
	}
	return img
}
