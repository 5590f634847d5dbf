package juliabrot

// Wire types shared between cmd/serve and its clients. Events travel
// client -> server as JSON text messages; the server answers each event
// with a JSON State message followed by one binary PNG frame.

// Event is a single UI action. Type selects which payload fields are
// meaningful.
type Event struct {
	Type EventType `json:"type"`

	// press / drag / release: pointer position in pixel space,
	// pre-translated by the client from its native coordinates.
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`

	// drag: square-selection modifier held.
	Square bool `json:"square,omitempty"`

	// release: pointer button (1 = primary, 3 = secondary).
	Button int `json:"button,omitempty"`

	// set: parameter field name and raw entry text.
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

type EventType string

const (
	EvPress   EventType = "press"
	EvDrag    EventType = "drag"
	EvRelease EventType = "release"
	EvSet     EventType = "set"
	EvMode    EventType = "mode"
	EvCmap    EventType = "cmap"
	EvApply   EventType = "apply"
	EvReset   EventType = "reset"
	EvSave    EventType = "save"
)

// State is the server's view of the session after handling an event.
// Entries carry the display text for every parameter field so the
// client can re-show the last valid value after a rejected edit.
type State struct {
	Entries map[string]string `json:"entries"`
	Mode    string            `json:"mode"`
	Cmap    string            `json:"cmap"`
	Cmaps   []string          `json:"cmaps"`
	Extent  Region            `json:"extent"`

	// Selection preview rectangle in pixel space, present mid-drag.
	Selection *PixelRect `json:"selection,omitempty"`
}

// PixelRect is an axis-aligned rectangle in client pixel coordinates.
type PixelRect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Frame is the output triple handed to a render collaborator: the
// evaluated matrix, the exact plane extent it was sampled from, and the
// colormap to display it with. Counts values lie in [0, Niter-1].
type Frame struct {
	Counts [][]int
	Extent Region
	Niter  int
	Cmap   string
}
