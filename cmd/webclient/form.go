//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/marvec/juliabrot"
	"github.com/marvec/juliabrot/view"
)

// bindForm attaches change listeners to the parameter entries, the mode
// and colormap selectors, and the action buttons. Element ids match the
// parameter field names.
func (c *client) bindForm() {
	doc := js.Global().Get("document")

	for _, name := range view.FieldNames() {
		entry := doc.Call("getElementById", name)
		entry.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
			c.send(juliabrot.Event{
				Type:  juliabrot.EvSet,
				Name:  name,
				Value: entry.Get("value").String(),
			})
			return nil
		}))
	}

	mode := doc.Call("getElementById", "mode")
	mode.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
		c.send(juliabrot.Event{Type: juliabrot.EvMode, Value: mode.Get("value").String()})
		return nil
	}))

	cmap := doc.Call("getElementById", "cmap")
	cmap.Call("addEventListener", "change", js.FuncOf(func(this js.Value, args []js.Value) any {
		c.send(juliabrot.Event{Type: juliabrot.EvCmap, Value: cmap.Get("value").String()})
		return nil
	}))

	c.bindButton("apply", juliabrot.EvApply)
	c.bindButton("reset", juliabrot.EvReset)
	c.bindButton("save", juliabrot.EvSave)
}

func (c *client) bindButton(id string, ev juliabrot.EventType) {
	btn := js.Global().Get("document").Call("getElementById", id)
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		c.send(juliabrot.Event{Type: ev})
		return nil
	}))
}

// applyState pushes a server state sync into the DOM: entry text,
// selector positions, the colormap list on first contact, and the drag
// preview.
func (c *client) applyState(state juliabrot.State) {
	doc := js.Global().Get("document")

	for name, text := range state.Entries {
		entry := doc.Call("getElementById", name)
		if entry.IsNull() {
			continue
		}
		// Skip the entry being edited right now, or typing would be
		// clobbered by the server echo.
		if !doc.Get("activeElement").Equal(entry) {
			entry.Set("value", text)
		}
	}

	cmap := doc.Call("getElementById", "cmap")
	if !c.cmapsFilled {
		for _, name := range state.Cmaps {
			opt := doc.Call("createElement", "option")
			opt.Set("value", name)
			opt.Set("textContent", name)
			cmap.Call("appendChild", opt)
		}
		c.cmapsFilled = true
	}
	cmap.Set("value", state.Cmap)
	doc.Call("getElementById", "mode").Set("value", state.Mode)

	c.drawSelection(state.Selection)
}
