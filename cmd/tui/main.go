// Command tui explores the fractal inside a terminal. Each character
// cell is one sample point; the mouse drives the same zoom gestures as
// the browser client (left click in, right click out, drag to select a
// region, ctrl-drag for a square selection).
package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/marvec/juliabrot"
	"github.com/marvec/juliabrot/palette"
	"github.com/marvec/juliabrot/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ui := &tui{screen: screen, app: view.NewApp()}
	ui.fitToScreen()
	if err := ui.redraw(); err != nil {
		return err
	}

	return ui.loop()
}

// tui owns the screen and the explorer state. Everything runs on the
// event goroutine; each event that changes the view re-evaluates the
// whole grid before the next event is polled.
type tui struct {
	screen tcell.Screen
	app    *view.App

	// pressed remembers the button that opened the current gesture;
	// tcell no longer reports it in the release event's mask.
	pressed tcell.ButtonMask

	frame juliabrot.Frame
}

func (t *tui) loop() error {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventResize:
			t.fitToScreen()
			if err := t.redraw(); err != nil {
				return err
			}

		case *tcell.EventMouse:
			if err := t.mouse(ev); err != nil {
				return err
			}

		case *tcell.EventKey:
			quit, err := t.key(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (t *tui) mouse(ev *tcell.EventMouse) error {
	x, y := ev.Position()
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case t.pressed == tcell.ButtonNone && buttons != tcell.ButtonNone:
		t.pressed = buttons
		t.app.Press(x, y)

	case t.pressed != tcell.ButtonNone && buttons != tcell.ButtonNone:
		t.app.Drag(x, y, ev.Modifiers()&tcell.ModCtrl != 0)
		t.paint()

	case t.pressed != tcell.ButtonNone && buttons == tcell.ButtonNone:
		button := view.ButtonPrimary
		switch t.pressed {
		case tcell.Button2:
			button = 2
		case tcell.Button3:
			button = view.ButtonSecondary
		}
		t.pressed = tcell.ButtonNone
		if t.app.Release(x, y, button) {
			return t.redraw()
		}
		t.paint()
	}
	return nil
}

func (t *tui) key(ev *tcell.EventKey) (quit bool, err error) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true, nil
	}
	if ev.Key() != tcell.KeyRune {
		return false, nil
	}

	switch ev.Rune() {
	case 'q':
		return true, nil

	case 'm':
		if t.app.Mode == juliabrot.Julia {
			t.app.SetMode(juliabrot.Mandelbrot)
		} else {
			t.app.SetMode(juliabrot.Julia)
		}
		return false, t.redraw()

	case 'c':
		names := palette.Names()
		next := 0
		for i, name := range names {
			if name == t.app.Cmap {
				next = (i + 1) % len(names)
			}
		}
		t.app.SetCmap(names[next])
		return false, t.redraw()

	case 'r':
		t.app.Reset()
		t.fitToScreen()
		return false, t.redraw()

	case '+', '-':
		niter := t.app.Store.Niter
		if ev.Rune() == '+' {
			niter *= 2
		} else {
			niter /= 2
		}
		if t.app.Store.Set("niter", strconv.Itoa(niter)) {
			return false, t.redraw()
		}
	}
	return false, nil
}

// fitToScreen slaves the viewport resolution to the terminal size.
func (t *tui) fitToScreen() {
	w, h := t.screen.Size()
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	t.app.Viewport.Resize(w, h)
}

// redraw re-evaluates the grid and paints it.
func (t *tui) redraw() error {
	frame, err := t.app.Render()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	t.frame = frame
	t.paint()
	return nil
}

// paint draws the cached frame and the live selection box.
func (t *tui) paint() {
	for y, row := range t.frame.Counts {
		for x, k := range row {
			c := palette.At(t.frame.Cmap, k, t.frame.Niter)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	if sel := t.app.SelectionPixels(); sel != nil {
		x0, x1 := sel.X0, sel.X1
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		y0, y1 := sel.Y0, sel.Y1
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		box := tcell.StyleDefault.Reverse(true)
		for x := x0; x <= x1; x++ {
			t.screen.SetContent(x, y0, ' ', nil, box)
			t.screen.SetContent(x, y1, ' ', nil, box)
		}
		for y := y0; y <= y1; y++ {
			t.screen.SetContent(x0, y, ' ', nil, box)
			t.screen.SetContent(x1, y, ' ', nil, box)
		}
	}

	status := fmt.Sprintf(" %s  %s  cmap:%s  niter:%d  [m]ode [c]map [r]eset [q]uit ",
		t.app.Mode, t.frame.Extent, t.app.Cmap, t.frame.Niter)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range status {
		t.screen.SetContent(i, 0, r, nil, statusStyle)
	}

	t.screen.Show()
}
