// Package observer pushes view parameter changes to the renderer and to
// the on-screen readouts.
package observer

import (
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

var (
	// ErrNoRenderer is returned when a Display is built without a renderer.
	ErrNoRenderer = errors.New("observer: renderer is required")
	// ErrNoReadout is returned when a Display is built without a readout.
	ErrNoReadout = errors.New("observer: at least one readout is required")
)

// Renderer is the drawing surface the parameters are pushed to.
type Renderer interface {
	// SetWindow sets the window width and center.
	SetWindow(width, center float64)

	// SetPan sets the image-space translation.
	SetPan(x, y float64)

	// SetZoom sets the per-axis scale.
	SetZoom(x, y float64)

	// Redraw requests a new frame.
	Redraw()
}

// Annotation is the formatted parameter readout.
type Annotation struct {
	WindowWidth  string
	WindowCenter string
	Zoom         string // "x1.00"
	PanX         string // whole pixels
	PanY         string
}

// Readout displays the current parameters.
type Readout interface {
	ShowParameters(a Annotation)
}

// ReadoutFunc adapts a function to the Readout interface.
type ReadoutFunc func(a Annotation)

// ShowParameters calls f(a).
func (f ReadoutFunc) ShowParameters(a Annotation) {
	f(a)
}

// LogReadout writes every annotation at debug level.
var LogReadout = ReadoutFunc(func(a Annotation) {
	log.WithFields(log.Fields{
		"ww":   a.WindowWidth,
		"wc":   a.WindowCenter,
		"zoom": a.Zoom,
		"dx":   a.PanX,
		"dy":   a.PanY,
	}).Debug("view parameters")
})

// FormatAnnotation formats a parameter snapshot for display.
func FormatAnnotation(s state.Snapshot) Annotation {
	return Annotation{
		WindowWidth:  strconv.FormatFloat(s.WindowWidth, 'f', -1, 64),
		WindowCenter: strconv.FormatFloat(s.WindowCenter, 'f', -1, 64),
		Zoom:         fmt.Sprintf("x%.2f", s.Zoom),
		PanX:         fmt.Sprintf("%.0f", s.PanX),
		PanY:         fmt.Sprintf("%.0f", s.PanY),
	}
}

// Display forwards parameter snapshots to one renderer and its readouts.
type Display struct {
	renderer Renderer
	readouts []Readout
}

// NewDisplay wires a renderer and one or more readouts.
func NewDisplay(renderer Renderer, readouts ...Readout) (*Display, error) {
	if renderer == nil {
		return nil, ErrNoRenderer
	}
	if len(readouts) == 0 {
		return nil, ErrNoReadout
	}
	for _, r := range readouts {
		if r == nil {
			return nil, ErrNoReadout
		}
	}
	return &Display{renderer: renderer, readouts: readouts}, nil
}

// Publish pushes the current parameters to the renderer, requests a
// redraw and updates every readout.
func (d *Display) Publish(p *state.Params) {
	if d == nil {
		panic("observer: Publish on nil Display")
	}
	s := p.Snapshot()

	d.renderer.SetWindow(s.WindowWidth, s.WindowCenter)
	d.renderer.SetPan(s.PanX, s.PanY)
	d.renderer.SetZoom(s.Zoom, s.Zoom)
	d.renderer.Redraw()

	a := FormatAnnotation(s)
	for _, r := range d.readouts {
		r.ShowParameters(a)
	}
}
