// Package widgets provides Gio UI widgets for the viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	log "github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/dicomview/internal/vis/draw"
	"github.com/elektrokombinacija/dicomview/internal/vis/interact"
	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

// Viewport is the image canvas. It binds pointer input to the gesture.
type Viewport struct {
	state    *state.State
	renderer *draw.ImageRenderer
	gesture  *interact.Gesture

	// ShowGrid draws pixel boundaries at high zoom.
	ShowGrid bool
	// PrimaryMode is the drag mode of the primary button.
	PrimaryMode interact.Mode

	size   image.Point
	last   f32.Point
	clicks ClickCounter

	cursor   f32.Point
	hovering bool
}

// NewViewport creates a new viewport widget.
func NewViewport(st *state.State, renderer *draw.ImageRenderer) *Viewport {
	return &Viewport{
		state:       st,
		renderer:    renderer,
		ShowGrid:    true,
		PrimaryMode: interact.ModeWindowLevel,
	}
}

// Bind attaches the gesture driven by this viewport.
func (v *Viewport) Bind(g *interact.Gesture) {
	v.gesture = g
}

// Size returns the canvas size from the last layout.
func (v *Viewport) Size() (width, height float64) {
	return float64(v.size.X), float64(v.size.Y)
}

// Cursor returns the hovered canvas position.
func (v *Viewport) Cursor() (pos f32.Point, ok bool) {
	return v.cursor, v.hovering
}

// Layout renders the viewport.
func (v *Viewport) Layout(gtx layout.Context) layout.Dimensions {
	bounds := gtx.Constraints.Max
	v.size = bounds
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{A: 255})

	v.handlePointerEvents(gtx)

	v.renderer.Layout(gtx)

	img := v.state.Image
	p := v.state.Params
	if v.ShowGrid {
		draw.DrawPixelGrid(gtx, p, img.Width, img.Height, draw.ColorPixelGrid)
	}
	draw.DrawFrame(gtx, p, img.Width, img.Height, draw.ColorFrame)

	if v.gesture != nil && v.gesture.Mode() == interact.ModeZoom {
		_, anchor := v.gesture.Anchor()
		draw.DrawAnchor(gtx, p, anchor.X, anchor.Y, draw.ColorAnchor)
	}

	return layout.Dimensions{Size: bounds}
}

func (v *Viewport) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Enter | pointer.Leave,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			v.handlePointerEvent(pe)
		}
	}
}

// handlePointerEvent translates one pointer event into gesture calls.
// Gio keeps delivering drags and the release to the handler that got the
// press, even once the pointer has left the window.
func (v *Viewport) handlePointerEvent(ev pointer.Event) {
	if v.gesture == nil {
		return
	}

	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonPrimary) && v.clicks.Press(ev.Time, ev.Position) {
			log.Debug("double click, resetting view")
			v.gesture.Reset()
			break
		}
		mode := ModeFor(ev.Buttons, ev.Modifiers, v.PrimaryMode)
		v.gesture.Start(mode, float64(ev.Position.X), float64(ev.Position.Y))
		log.WithField("mode", mode).Trace("drag start")

	case pointer.Drag:
		d := ev.Position.Sub(v.last)
		v.gesture.Move(float64(d.X), float64(d.Y))

	case pointer.Release, pointer.Cancel:
		v.gesture.Stop()

	case pointer.Enter, pointer.Move:
		// Refresh the intensity readout under the cursor.
		v.hovering = true
		v.renderer.Redraw()

	case pointer.Leave:
		v.hovering = false
	}

	v.last = ev.Position
	v.cursor = ev.Position
}
