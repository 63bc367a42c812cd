package widgets

import (
	"image/color"
	"strconv"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/dicomview/internal/vis/observer"
	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

// Readout shows the current view parameters and the intensity under the
// cursor.
type Readout struct {
	state    *state.State
	viewport *Viewport
	current  observer.Annotation
}

// NewReadout creates a readout panel.
func NewReadout(st *state.State, viewport *Viewport) *Readout {
	return &Readout{
		state:    st,
		viewport: viewport,
	}
}

// ShowParameters stores the annotation shown on the next frame.
func (r *Readout) ShowParameters(a observer.Annotation) {
	r.current = a
}

// Current returns the last annotation received.
func (r *Readout) Current() observer.Annotation {
	return r.current
}

// Probe formats the rescaled intensity under the cursor, or "-".
func (r *Readout) Probe() string {
	pos, ok := r.viewport.Cursor()
	if !ok {
		return "-"
	}
	_, h := r.viewport.Size()
	v, ok := r.state.Probe(float64(pos.X), float64(pos.Y), h)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Layout renders the readout fields in a row.
func (r *Readout) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	a := r.current
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		r.field(th, "WW", a.WindowWidth),
		r.field(th, "WC", a.WindowCenter),
		r.field(th, "Zoom", a.Zoom),
		r.field(th, "dX", a.PanX),
		r.field(th, "dY", a.PanY),
		r.field(th, "Value", r.Probe()),
	)
}

func (r *Readout) field(th *material.Theme, name, value string) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Left: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			label := material.Label(th, 12, name+": "+value)
			label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			return label.Layout(gtx)
		})
	})
}
