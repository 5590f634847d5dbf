package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"

	"github.com/coder/websocket"

	"github.com/marvec/juliabrot"
	"github.com/marvec/juliabrot/palette"
	"github.com/marvec/juliabrot/view"
)

// session couples one websocket connection with one explorer state.
// Events are handled strictly in arrival order on the session
// goroutine; every event that changes the view triggers a synchronous
// re-evaluation before the next event is read.
type session struct {
	conn *websocket.Conn
	app  *view.App
}

func newSession(conn *websocket.Conn) *session {
	return &session{conn: conn, app: view.NewApp()}
}

func (s *session) run(ctx context.Context) error {
	defer s.conn.CloseNow()

	// First paint before any event arrives.
	if err := s.sync(ctx, true); err != nil {
		return err
	}

	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		if typ != websocket.MessageText {
			continue
		}

		var ev juliabrot.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			log.Printf("bad event %q: %v", data, err)
			continue
		}

		redraw, err := s.handle(ev)
		if err != nil {
			log.Printf("event %s: %v", ev.Type, err)
		}
		if err := s.sync(ctx, redraw); err != nil {
			return err
		}
	}
}

// handle applies one event to the application state and reports whether
// the frame must be recomputed. Rejected edits are not errors: the
// state sync re-displays the last valid value.
func (s *session) handle(ev juliabrot.Event) (redraw bool, err error) {
	switch ev.Type {
	case juliabrot.EvPress:
		s.app.Press(ev.X, ev.Y)
		return false, nil

	case juliabrot.EvDrag:
		s.app.Drag(ev.X, ev.Y, ev.Square)
		return false, nil

	case juliabrot.EvRelease:
		return s.app.Release(ev.X, ev.Y, ev.Button), nil

	case juliabrot.EvSet:
		s.app.Store.Set(ev.Name, ev.Value)
		return false, nil

	case juliabrot.EvMode:
		m, err := juliabrot.ParseMode(ev.Value)
		if err != nil {
			return false, err
		}
		s.app.SetMode(m)
		return true, nil

	case juliabrot.EvCmap:
		s.app.SetCmap(ev.Value)
		return true, nil

	case juliabrot.EvApply:
		if err := s.app.Apply(); err != nil {
			return false, err
		}
		return true, nil

	case juliabrot.EvReset:
		s.app.Reset()
		return true, nil

	case juliabrot.EvSave:
		return false, s.app.Save()

	default:
		return false, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// sync sends the state message and, when redraw is set, a fresh frame.
func (s *session) sync(ctx context.Context, redraw bool) error {
	state := juliabrot.State{
		Entries:   s.app.Store.Entries(),
		Mode:      s.app.Mode.String(),
		Cmap:      s.app.Cmap,
		Cmaps:     palette.Names(),
		Extent:    s.app.Viewport.Rect,
		Selection: s.app.SelectionPixels(),
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	if !redraw {
		return nil
	}

	frame, err := s.app.Render()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, palette.Image(frame)); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
