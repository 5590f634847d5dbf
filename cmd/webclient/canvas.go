//go:build js && wasm

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"syscall/js"

	"github.com/marvec/juliabrot"
)

// bindCanvas attaches the pointer listeners. Coordinates are forwarded
// raw; pixel-to-plane mapping is the server's job.
func (c *client) bindCanvas() {
	doc := js.Global().Get("document")
	c.canvas = doc.Call("getElementById", "fractal")

	c.canvas.Call("addEventListener", "mousedown", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		e.Call("preventDefault")
		c.send(juliabrot.Event{
			Type: juliabrot.EvPress,
			X:    e.Get("offsetX").Int(),
			Y:    e.Get("offsetY").Int(),
		})
		return nil
	}))

	c.canvas.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		// Only drags matter to the server; plain motion stays local.
		if e.Get("buttons").Int() == 0 {
			return nil
		}
		c.send(juliabrot.Event{
			Type:   juliabrot.EvDrag,
			X:      e.Get("offsetX").Int(),
			Y:      e.Get("offsetY").Int(),
			Square: e.Get("ctrlKey").Bool(),
		})
		return nil
	}))

	c.canvas.Call("addEventListener", "mouseup", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		c.send(juliabrot.Event{
			Type:   juliabrot.EvRelease,
			X:      e.Get("offsetX").Int(),
			Y:      e.Get("offsetY").Int(),
			Button: domButton(e.Get("button").Int()),
		})
		return nil
	}))

	// The secondary button must reach mouseup, not open a menu.
	c.canvas.Call("addEventListener", "contextmenu", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		return nil
	}))
}

// domButton translates DOM button numbers (0 left, 1 middle, 2 right)
// to the X11-style numbering the viewport expects.
func domButton(b int) int {
	switch b {
	case 0:
		return 1
	case 1:
		return 2
	case 2:
		return 3
	default:
		return 0
	}
}

// drawFrame decodes a PNG frame and puts it on the canvas, keeping the
// ImageData around so selection overlays can restore it.
func (c *client) drawFrame(data []byte) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("png decode: %w", err)
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}

	width := bounds.Dx()
	height := bounds.Dy()
	c.canvas.Set("width", width)
	c.canvas.Set("height", height)

	jsData := js.Global().Get("Uint8ClampedArray").New(len(rgba.Pix))
	js.CopyBytesToJS(jsData, rgba.Pix)
	imageData := js.Global().Get("ImageData").New(jsData, width, height)

	ctx := c.canvas.Call("getContext", "2d")
	ctx.Call("putImageData", imageData, 0, 0)
	c.lastFrame = imageData
	return nil
}

// drawSelection restores the frame and strokes the live drag rectangle
// over it, white solid with a black dotted counterpart so it reads on
// any colormap.
func (c *client) drawSelection(sel *juliabrot.PixelRect) {
	if c.lastFrame.IsUndefined() {
		return
	}
	ctx := c.canvas.Call("getContext", "2d")
	ctx.Call("putImageData", c.lastFrame, 0, 0)
	if sel == nil {
		return
	}

	x := min(sel.X0, sel.X1)
	y := min(sel.Y0, sel.Y1)
	w := abs(sel.X1 - sel.X0)
	h := abs(sel.Y1 - sel.Y0)

	ctx.Set("lineWidth", 1)
	ctx.Call("setLineDash", js.Global().Get("Array").New())
	ctx.Set("strokeStyle", "white")
	ctx.Call("strokeRect", x, y, w, h)

	dash := js.Global().Get("Array").New()
	dash.Call("push", 2)
	dash.Call("push", 2)
	ctx.Call("setLineDash", dash)
	ctx.Set("strokeStyle", "black")
	ctx.Call("strokeRect", x, y, w, h)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
