//go:build js && wasm

// Command webclient is the browser front end, compiled with
// GOOS=js GOARCH=wasm and served by cmd/server as main.wasm.
// It forwards raw pointer and entry events to the server and displays
// the PNG frames it receives; all fractal state lives server-side.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"syscall/js"

	"github.com/coder/websocket"

	"github.com/marvec/juliabrot"
)

func main() {
	logScreenf("Starting web client...")

	// Derive the websocket address from the page location.
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketURL := proto + "://" + host + "/ws"

	ctx := context.Background()

	logScreenf("Connecting to %s...", websocketURL)
	conn, _, err := websocket.Dial(ctx, websocketURL, nil)
	if err != nil {
		logFatalf("websocket dial: %v", err)
	}
	// Frames for a large canvas exceed the default read limit.
	conn.SetReadLimit(32 << 20)
	logScreenf("Connected.")

	c := &client{ctx: ctx, conn: conn}
	c.bindForm()
	c.bindCanvas()

	if err := c.readLoop(); err != nil {
		logFatalf("readLoop: %v", err)
	}
}

// client couples the websocket connection with the DOM surfaces it
// keeps in sync.
type client struct {
	ctx  context.Context
	conn *websocket.Conn

	canvas    js.Value
	lastFrame js.Value // decoded ImageData of the last received frame

	cmapsFilled bool
}

// send marshals one event and ships it to the server.
func (c *client) send(ev juliabrot.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		logFatalf("marshal event: %v", err)
	}
	if err := c.conn.Write(c.ctx, websocket.MessageText, data); err != nil {
		logFatalf("write event: %v", err)
	}
}

// readLoop applies server messages as they arrive: text messages carry
// the state sync, binary messages a PNG frame.
func (c *client) readLoop() error {
	for {
		typ, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		switch typ {
		case websocket.MessageText:
			var state juliabrot.State
			if err := json.Unmarshal(data, &state); err != nil {
				return fmt.Errorf("unmarshal state: %w", err)
			}
			c.applyState(state)
		case websocket.MessageBinary:
			if err := c.drawFrame(data); err != nil {
				return fmt.Errorf("draw frame: %w", err)
			}
		}
	}
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log element and terminates.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}
