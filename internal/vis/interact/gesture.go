// Package interact turns pointer drags into window/level, pan and zoom
// adjustments.
package interact

import (
	"errors"

	"github.com/elektrokombinacija/dicomview/internal/vis/observer"
	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

// CursorOffset is subtracted from the press position on both axes.
// It compensates the hot spot of the drag cursor icon.
const CursorOffset = 7

// ErrNotWired is returned when a Gesture is built without its collaborators.
var ErrNotWired = errors.New("interact: params, display and canvas are required")

// Mode selects the adjustment a drag performs.
type Mode int

const (
	ModeWindowLevel Mode = iota
	ModeZoom
	ModePan
	ModeNone
)

func (m Mode) String() string {
	switch m {
	case ModeWindowLevel:
		return "window/level"
	case ModeZoom:
		return "zoom"
	case ModePan:
		return "pan"
	}
	return "none"
}

// Canvas reports the drawing surface size in screen pixels.
type Canvas interface {
	Size() (width, height float64)
}

// Gesture tracks the active drag and routes pointer motion to the
// matching adjustment. It is not safe for concurrent use; all calls are
// expected from the UI event loop.
type Gesture struct {
	params  *state.Params
	display *observer.Display
	canvas  Canvas

	mode        Mode
	anchor      Point // Press position, cursor-corrected
	imageAnchor Point // Press position in image space
}

// NewGesture creates an idle gesture over params.
func NewGesture(params *state.Params, display *observer.Display, canvas Canvas) (*Gesture, error) {
	if params == nil || display == nil || canvas == nil {
		return nil, ErrNotWired
	}
	return &Gesture{
		params:  params,
		display: display,
		canvas:  canvas,
		mode:    ModeNone,
	}, nil
}

// Mode returns the active mode.
func (g *Gesture) Mode() Mode {
	return g.mode
}

// Active reports whether a drag is in progress.
func (g *Gesture) Active() bool {
	return g.mode != ModeNone
}

// Anchor returns the press position in screen and image space.
func (g *Gesture) Anchor() (screen, image Point) {
	return g.anchor, g.imageAnchor
}

// Start begins a drag at a screen position. Unknown modes leave the
// gesture idle.
func (g *Gesture) Start(mode Mode, screenX, screenY float64) {
	switch mode {
	case ModeWindowLevel, ModeZoom, ModePan:
		g.mode = mode
	default:
		g.mode = ModeNone
	}

	g.anchor = Point{X: screenX - CursorOffset, Y: screenY - CursorOffset}

	// A zero zoom maps every point to the pan offset; any anchor works.
	if g.params.Zoom == 0 {
		g.imageAnchor = Point{}
		return
	}
	_, h := g.canvas.Size()
	x, y := g.params.ScreenToImage(g.anchor.X, g.anchor.Y, h)
	g.imageAnchor = Point{X: x, Y: y}
}

// Move applies a pointer delta, measured since the previous move, to the
// active mode and publishes the result.
func (g *Gesture) Move(dx, dy float64) {
	switch g.mode {
	case ModeWindowLevel:
		AdjustWindow(g.params, dx, dy)
	case ModeZoom:
		w, h := g.canvas.Size()
		AdjustZoom(g.params, g.imageAnchor, w, h, dx, dy)
	case ModePan:
		AdjustPan(g.params, dx, dy)
	default:
		return
	}
	g.display.Publish(g.params)
}

// Stop ends the drag.
func (g *Gesture) Stop() {
	g.mode = ModeNone
}

// Reset restores the initial parameters and publishes them once. The
// active mode is left unchanged.
func (g *Gesture) Reset() {
	g.params.Reset()
	g.display.Publish(g.params)
}
